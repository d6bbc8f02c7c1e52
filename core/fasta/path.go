// core/fasta/path.go
package fasta

import "context"

// StreamPathCtx opens path ("-" for stdin, gzip handled transparently) and
// streams its records through emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

// ReadAllPath collects every record of path into memory. Intended for small
// inputs; large files should go through StreamPathCtx.
func ReadAllPath(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := StreamPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
