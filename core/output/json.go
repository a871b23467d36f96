package output

import (
	"encoding/json"
	"io"

	"printquote/core/catalog"
)

// JSONFormatter writes indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements Formatter
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// RenderQuote implements Formatter
func (f *JSONFormatter) RenderQuote(w io.Writer, result *QuoteResult) error {
	return encode(w, result)
}

// RenderCatalog implements Formatter
func (f *JSONFormatter) RenderCatalog(w io.Writer, cat *catalog.Catalog) error {
	return encode(w, cat.Entries())
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
