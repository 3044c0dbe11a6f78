package jsonutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodePrettyIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePretty(&buf, map[string]int{"n": 1}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "\n  \"n\": 1\n") {
		t.Fatalf("not two-space indented: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("missing trailing newline: %q", got)
	}
}
