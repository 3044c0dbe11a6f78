package pretty

import (
	"strings"
	"testing"

	"gcscan-core/scan"
)

func TestRenderReportBar(t *testing.T) {
	s := scan.New(scan.Config{})
	r := s.Scan("s", []byte("GCGCATAT"))
	got := RenderReportWithOptions(r, Options{BarWidth: 10})
	if !strings.Contains(got, "[#####.....]") {
		t.Fatalf("half-GC bar wrong:\n%s", got)
	}
	if !strings.Contains(got, "50.0%") {
		t.Fatalf("percentage missing:\n%s", got)
	}
	if !strings.Contains(got, "A=2 C=2 G=2 T=2 other=0") {
		t.Fatalf("composition line wrong:\n%s", got)
	}
}

func TestRenderReportClamp(t *testing.T) {
	s := scan.New(scan.Config{})
	r := s.Scan("s", []byte("GGGG"))
	got := RenderReportWithOptions(r, Options{BarWidth: 4})
	if !strings.Contains(got, "[####]") {
		t.Fatalf("full bar wrong:\n%s", got)
	}
}
