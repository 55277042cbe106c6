package outwriter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{5, "5 B"},
		{1000, "1.0 kB"},
		{2048, "2.0 kB"},
		{1500000, "1.5 MB"},
		{-5, "-5 B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatSize(tt.input))
	}
}

func TestWriteWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	err := writeWithFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	}, "Wrote text")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteWithFileErrors(t *testing.T) {
	boom := errors.New("boom")
	err := writeWithFile(filepath.Join(t.TempDir(), "out.txt"), func(io.Writer) error { return boom }, "Wrote text")
	assert.ErrorIs(t, err, boom)

	err = writeWithFile(filepath.Join(t.TempDir(), "missing", "out.txt"), func(io.Writer) error { return nil }, "Wrote text")
	assert.Error(t, err)
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"size": 5}))
	assert.Equal(t, "{\n  \"size\": 5\n}\n", buf.String())

	assert.Error(t, writeJSON(&buf, make(chan int)))
}
