package formatter

import (
	"io"

	"github.com/penwyp/go-entparser/internal/analyzer"
)

// Formatter writes the outcome of a parse run.
type Formatter interface {
	Format(w io.Writer, result *analyzer.Result) error
}

// New returns the JSON formatter when asJSON is set, the summary formatter
// otherwise.
func New(asJSON bool) Formatter {
	if asJSON {
		return NewJSONFormatter()
	}
	return NewSummaryFormatter()
}
