// internal/scanio/scanio.go
package scanio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"strscan-core/fasta"
)

// Seq is one scannable input with enough provenance to label a result row.
type Seq struct {
	Source string // "argN", "stdin", or a FASTA file path
	Record string // FASTA record ID; empty for inline text
	Text   string
}

// Collect resolves positional arguments and FASTA files into an ordered list
// of sequences. A positional "-" reads raw text from stdin (one sequence,
// trailing newline trimmed). FASTA files may be "-" for stdin too, and are
// gzip-aware; each record becomes its own sequence.
func Collect(ctx context.Context, stdin io.Reader, args, fastaFiles []string) ([]Seq, error) {
	var out []Seq
	for i, a := range args {
		if a == "-" {
			b, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			out = append(out, Seq{Source: "stdin", Text: trimTrailingNewline(string(b))})
			continue
		}
		out = append(out, Seq{Source: fmt.Sprintf("arg%d", i+1), Text: a})
	}
	for _, path := range fastaFiles {
		err := streamFile(ctx, stdin, path, func(r fasta.Record) error {
			out = append(out, Seq{Source: path, Record: r.ID, Text: string(r.Seq)})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no input: pass text arguments, '-' for stdin, or --fasta files")
	}
	return out, nil
}

func streamFile(ctx context.Context, stdin io.Reader, path string, emit func(fasta.Record) error) error {
	if path == "-" {
		// Route through the provided stdin so tests can inject input.
		return fasta.StreamCtx(ctx, stdin, emit)
	}
	return fasta.StreamPathCtx(ctx, path, emit)
}

func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
