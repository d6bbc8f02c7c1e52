// core/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func collect(t *testing.T, in string) []Record {
	t.Helper()
	var out []Record
	err := StreamCtx(context.Background(), strings.NewReader(in), func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	return out
}

func TestStreamMultiRecord(t *testing.T) {
	recs := collect(t, ">seq1 description here\nATGC\nATGC\n\n>seq2\natgc\n")
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "seq1" || string(recs[0].Seq) != "ATGCATGC" {
		t.Errorf("record 0: %q %q", recs[0].ID, recs[0].Seq)
	}
	if recs[1].ID != "seq2" || string(recs[1].Seq) != "atgc" {
		t.Errorf("record 1: %q %q", recs[1].ID, recs[1].Seq)
	}
}

func TestStreamCRLFAndHeaderless(t *testing.T) {
	recs := collect(t, ">s\r\nAT\r\nGC\r\n")
	if len(recs) != 1 || string(recs[0].Seq) != "ATGC" {
		t.Fatalf("crlf: %+v", recs)
	}
	recs = collect(t, "ATGC\n")
	if len(recs) != 1 || recs[0].ID != "" || string(recs[0].Seq) != "ATGC" {
		t.Fatalf("headerless: %+v", recs)
	}
	if n := len(collect(t, "")); n != 0 {
		t.Fatalf("empty input produced %d records", n)
	}
}

func TestStreamEmptyRecordKept(t *testing.T) {
	recs := collect(t, ">only-header\n")
	if len(recs) != 1 || recs[0].ID != "only-header" || len(recs[0].Seq) != 0 {
		t.Fatalf("got %+v", recs)
	}
}

func TestStreamCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := StreamCtx(ctx, strings.NewReader(">a\nAT\n>b\nGC\n"), func(Record) error { return nil })
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestReadAllPathGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqs.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">g1\nGGCC\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadAllPath(context.Background(), path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "g1" || string(recs[0].Seq) != "GGCC" {
		t.Fatalf("got %+v", recs)
	}
}

func TestReadAllPathMissing(t *testing.T) {
	if _, err := ReadAllPath(context.Background(), "no/such/file.fa"); err == nil {
		t.Fatal("expected open error")
	}
}
