// internal/writers/writers.go
package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Known reports whether format names a registered output format.
func Known(format string) bool {
	switch format {
	case FormatText, FormatTable, FormatJSON, FormatJSONL:
		return true
	}
	return false
}

// Formats lists the accepted format names for usage text.
func Formats() string {
	return strings.Join([]string{FormatText, FormatTable, FormatJSON, FormatJSONL}, " | ")
}

// Spec describes how result items of type T are laid out as rows for the
// text and table formats. JSON formats marshal the items directly.
type Spec[T any] struct {
	Header []string
	Row    func(T) []string
}

// Write renders items to w in the given format. Header only applies to the
// text format; tables always carry their header.
func Write[T any](w io.Writer, format string, header bool, spec Spec[T], items []T) error {
	switch format {
	case FormatText:
		bw := bufio.NewWriter(w)
		if header && len(spec.Header) > 0 {
			if _, err := fmt.Fprintln(bw, strings.Join(spec.Header, "\t")); err != nil {
				return err
			}
		}
		for _, it := range items {
			if _, err := fmt.Fprintln(bw, strings.Join(spec.Row(it), "\t")); err != nil {
				return err
			}
		}
		return bw.Flush()

	case FormatTable:
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, spec.Row(it))
		}
		return RenderTable(w, spec.Header, rows)

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)

	case FormatJSONL:
		bw := bufio.NewWriter(w)
		enc := json.NewEncoder(bw)
		for _, it := range items {
			if err := enc.Encode(it); err != nil {
				return err
			}
		}
		return bw.Flush()

	default:
		return fmt.Errorf("unknown output format %q (want %s)", format, Formats())
	}
}
