package codec

import (
	"errors"
	"path"
	"strings"

	"github.com/huangsam/buildsize/internal/contract"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/minify/v2/xml"
)

// mediaTypes maps file extensions to the media types registered below.
var mediaTypes = map[string]string{
	".css":  "text/css",
	".htm":  "text/html",
	".html": "text/html",
	".js":   "application/javascript",
	".mjs":  "application/javascript",
	".cjs":  "application/javascript",
	".json": "application/json",
	".map":  "application/json",
	".svg":  "image/svg+xml",
	".xml":  "text/xml",
}

// ExtensionMinifier picks a minifier from the file label's extension.
// Content of unknown types is returned unchanged.
type ExtensionMinifier struct {
	m *minify.M
}

var _ contract.Minifier = &ExtensionMinifier{} // Compile-time check

// NewExtensionMinifier registers the web minifiers.
func NewExtensionMinifier() *ExtensionMinifier {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("application/json", json.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	m.AddFunc("text/xml", xml.Minify)
	return &ExtensionMinifier{m: m}
}

// MediaType returns the media type for a label, or "" when none is known.
func MediaType(label string) string {
	return mediaTypes[strings.ToLower(path.Ext(label))]
}

// Minify implements the Minifier interface.
func (e *ExtensionMinifier) Minify(content string, label string) (string, error) {
	mediaType := MediaType(label)
	if mediaType == "" {
		return content, nil
	}
	out, err := e.m.String(mediaType, content)
	if errors.Is(err, minify.ErrNotExist) {
		return content, nil
	}
	return out, err
}
