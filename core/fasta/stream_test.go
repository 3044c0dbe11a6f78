package fasta

import (
	"compress/gzip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const plain = `>seq1 description text
ACGT
acgt
>seq2
NNnn
`

func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fmt.Sprintf("test-%d.fa.gz", time.Now().UnixNano()))
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestStreamPlainReader(t *testing.T) {
	var recs []Record
	err := StreamCtx(context.Background(), strings.NewReader(plain), 0, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1" {
		t.Fatalf("header ID not trimmed at whitespace: %q", recs[0].ID)
	}
	if string(recs[0].Seq) != "ACGTacgt" {
		t.Fatalf("multi-line sequence not joined: %q", recs[0].Seq)
	}
}

func TestStreamGzip(t *testing.T) {
	gzPath := writeGz(t, plain)

	ch, err := Stream(gzPath, 0)
	if err != nil {
		t.Fatalf("stream gz: %v", err)
	}
	var ids []string
	for r := range ch {
		ids = append(ids, r.ID)
	}
	if len(ids) != 2 || ids[0] != "seq1" || ids[1] != "seq2" {
		t.Fatalf("gzip parse failed, ids=%v", ids)
	}
}

func TestStreamChunkIDs(t *testing.T) {
	in := ">s\n" + strings.Repeat("ACGT", 4) + "\n" // 16 bases
	var recs []Record
	err := StreamCtx(context.Background(), strings.NewReader(in), 6, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 chunks of 16/6, got %d", len(recs))
	}
	want := []string{"s:0-6", "s:6-12", "s:12-16"}
	total := 0
	for i, r := range recs {
		if r.ID != want[i] {
			t.Fatalf("chunk %d ID %q, want %q", i, r.ID, want[i])
		}
		total += len(r.Seq)
	}
	if total != 16 {
		t.Fatalf("chunks cover %d bases, want 16", total)
	}
}

func TestStreamCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := StreamCtx(ctx, strings.NewReader(plain), 0, func(Record) error { return nil })
	if err != context.Canceled {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestStreamMissingFile(t *testing.T) {
	if _, err := Stream(filepath.Join(t.TempDir(), "nope.fa"), 0); err == nil {
		t.Fatal("expected open error for missing file")
	}
}
