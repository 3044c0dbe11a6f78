package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gcscan-core/scan"
	"gcscan/internal/output"
	"gcscan/pkg/api"
)

func reports() []scan.Report {
	s := scan.New(scan.Config{})
	a := s.Scan("b-seq", []byte("GCGC"))
	a.SourceFile = "x.fa"
	b := s.Scan("a-seq", []byte("ATAT"))
	b.SourceFile = "x.fa"
	return []scan.Report{a, b}
}

func feed(ch chan<- scan.Report, rs []scan.Report) {
	for _, r := range rs {
		ch <- r
	}
	close(ch)
}

func TestReportWriterTextSorted(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartReportWriter(&buf, output.FormatText, true, true, false, 4)
	feed(in, reports())
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 || lines[0] != output.TSVHeader {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	// Sorted: a-seq before b-seq.
	if !strings.Contains(lines[1], "a-seq") || !strings.Contains(lines[2], "b-seq") {
		t.Fatalf("sort order wrong:\n%s", buf.String())
	}
}

func TestReportWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartReportWriter(&buf, output.FormatJSON, false, true, false, 4)
	feed(in, reports())
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	var got []api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("round-trip: %v", err)
	}
	if len(got) != 2 || got[0].SequenceID != "b-seq" {
		t.Fatalf("unexpected JSON: %+v", got)
	}
}

func TestReportWriterJSONL(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartReportJSONLWriter(&buf, 4)
	feed(in, reports())
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 JSONL lines, got %d", len(lines))
	}
	var first api.ReportV1
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0: %v", err)
	}
	if first.GCContent != 1.0 {
		t.Fatalf("line 0 content: %+v", first)
	}
}

func TestReportWriterJSONLSorted(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartSortedReportJSONLWriter(&buf, 4)
	feed(in, reports()) // arrives b-seq, a-seq
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 JSONL lines, got %d", len(lines))
	}
	var first, second api.ReportV1
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 1: %v", err)
	}
	if first.SequenceID != "a-seq" || second.SequenceID != "b-seq" {
		t.Fatalf("sorted order wrong: %q then %q", first.SequenceID, second.SequenceID)
	}
}

func TestReportWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartReportWriter(&buf, "xml", false, true, false, 1)
	close(in)
	if err := <-errCh; err == nil {
		t.Fatal("expected error for unknown format")
	}
}
