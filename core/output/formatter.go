// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"slices"
	"sync"

	"printquote/core/catalog"
	"printquote/core/order"
	"printquote/core/pricing"
	"printquote/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderQuote produces output for one priced configuration
	RenderQuote(w io.Writer, result *QuoteResult) error

	// RenderCatalog produces output for the option catalog
	RenderCatalog(w io.Writer, cat *catalog.Catalog) error
}

// QuoteResult contains the complete quote output
type QuoteResult struct {
	// Breakdown is the calculated price
	Breakdown *pricing.Breakdown `json:"breakdown"`

	// Line is the cart line; nil when the price is zero
	Line *order.Line `json:"line,omitempty"`

	// Metadata contains execution context
	Metadata QuoteMetadata `json:"metadata"`
}

// QuoteMetadata contains execution context
type QuoteMetadata struct {
	// RateCard is the rate card version
	RateCard string `json:"rate_card"`

	// RateCardHash fingerprints the rate card contents
	RateCardHash string `json:"rate_card_hash,omitempty"`

	// Version is the tool version
	Version string `json:"version"`
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates a registry with the built-in formatters
func NewRegistry(noColor, showDetails, verbose bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	_ = r.Register(NewCLIFormatter(noColor, showDetails, verbose))
	_ = r.Register(NewJSONFormatter())
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[formatter.Format()]; exists {
		return errors.Newf(errors.TypeInternal, "formatter %s already registered", formatter.Format())
	}
	r.formatters[formatter.Format()] = formatter
	return nil
}

// Get returns the formatter for a format type
func (r *Registry) Get(format Format) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.NotFound("output format", string(format))
	}
	return f, nil
}

// Formats returns all registered format names, sorted
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}
