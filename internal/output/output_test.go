package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gcscan-core/gc"
	"gcscan-core/scan"
)

func sample() scan.Report {
	s := scan.New(scan.Config{Window: 4})
	r := s.Scan("chr1", []byte("GCGCATAT"))
	r.SourceFile = "in.fa"
	return r
}

func TestFormatReportRowTSV(t *testing.T) {
	row := FormatReportRowTSV(sample())
	cols := strings.Split(row, "\t")
	if len(cols) != len(strings.Split(TSVHeader, "\t")) {
		t.Fatalf("row/header column mismatch: %q", row)
	}
	if cols[0] != "in.fa" || cols[1] != "chr1" || cols[2] != "8" {
		t.Fatalf("identity columns wrong: %q", row)
	}
	if cols[10] != "0.500000" {
		t.Fatalf("gc column wrong: %q", cols[10])
	}
}

func TestWriteTextHeader(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTextWithRenderer(&buf, []scan.Report{sample()}, true, false, nil)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 || lines[0] != TSVHeader {
		t.Fatalf("unexpected text output:\n%s", buf.String())
	}
}

func TestWriteJSONSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []scan.Report{sample()}); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("round-trip: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 element, got %d", len(got))
	}
	r := got[0]
	if r["sequence_id"] != "chr1" || r["gc_count"] != float64(4) || r["valid_bases"] != float64(8) {
		t.Fatalf("schema fields wrong: %+v", r)
	}
	if _, ok := r["windows"]; !ok {
		t.Fatalf("windows missing from wire form: %+v", r)
	}
}

func TestWriteBED(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBED(&buf, []scan.Report{sample()}); err != nil {
		t.Fatalf("write bed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 BED lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "chr1\t0\t4\tchr1.0\t1.000000") {
		t.Fatalf("BED line 0 wrong: %q", lines[0])
	}
}

func TestWriteBEDNoWindows(t *testing.T) {
	r := scan.Report{SequenceID: "s", GC: gc.Counts{GC: 1, Valid: 2}}
	var buf bytes.Buffer
	if err := WriteBED(&buf, []scan.Report{r}); err != nil {
		t.Fatalf("write bed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("windowless report should emit nothing, got %q", buf.String())
	}
}
