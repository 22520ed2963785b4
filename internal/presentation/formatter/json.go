package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-entparser/internal/analyzer"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(w io.Writer, result *analyzer.Result) error {
	data, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
