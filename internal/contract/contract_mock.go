package contract

import (
	"github.com/huangsam/buildsize/schema"
	"github.com/stretchr/testify/mock"
)

// MockCompressor is a mock implementation of Compressor for testing.
type MockCompressor struct {
	mock.Mock
}

var _ Compressor = &MockCompressor{} // Compile-time check

// Algorithm implements the Compressor interface.
func (m *MockCompressor) Algorithm() schema.Compression {
	ret := m.Called()
	algorithm, _ := ret.Get(0).(schema.Compression)
	return algorithm
}

// CompressedSize implements the Compressor interface.
func (m *MockCompressor) CompressedSize(content []byte) (int64, error) {
	ret := m.Called(content)
	size, _ := ret.Get(0).(int64)
	return size, ret.Error(1)
}

// MockMinifier is a mock implementation of Minifier for testing.
type MockMinifier struct {
	mock.Mock
}

var _ Minifier = &MockMinifier{} // Compile-time check

// Minify implements the Minifier interface.
func (m *MockMinifier) Minify(content string, label string) (string, error) {
	ret := m.Called(content, label)
	return ret.String(0), ret.Error(1)
}

// MockReportSink is a mock implementation of ReportSink for testing.
type MockReportSink struct {
	mock.Mock
}

var _ ReportSink = &MockReportSink{} // Compile-time check

// WriteReport implements the ReportSink interface.
func (m *MockReportSink) WriteReport(report *schema.Report) error {
	ret := m.Called(report)
	return ret.Error(0)
}
