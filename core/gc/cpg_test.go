package gc

import (
	"math"
	"testing"
)

func TestObservedExpectedCpG(t *testing.T) {
	// "CGCG": 2 CpG, 2 C, 2 G, length 4 → 2*4/(2*2) = 2.0
	if got := ObservedExpectedCpG([]byte("CGCG")); math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("CGCG = %v, want 2.0", got)
	}
	// Lowercase recognized.
	if got := ObservedExpectedCpG([]byte("cgcg")); math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("cgcg = %v, want 2.0", got)
	}
}

func TestObservedExpectedCpGSentinel(t *testing.T) {
	for _, s := range []string{"", "ATAT", "GGGG", "CCCC", "GGCC"} {
		// GGCC has C and G but no C-followed-by-G dinucleotide.
		if got := ObservedExpectedCpG([]byte(s)); got != 0.0 {
			t.Fatalf("%q = %v, want 0.0", s, got)
		}
	}
}
