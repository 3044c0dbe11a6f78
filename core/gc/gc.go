// core/gc/gc.go
// Single-pass GC content over raw nucleotide bytes.
//
// Classification is total and case-explicit: G/C/g/c count toward both
// accumulators, A/T/a/t toward the denominator only, and every other
// byte (IUPAC ambiguity codes, gaps, junk) toward neither. No locale
// or case-folding machinery is involved.
package gc

// Counts holds the two accumulators of a GC scan.
// Partial counts from disjoint sub-views combine additively with Add,
// so callers may chunk one sequence across workers and sum before the
// final division.
type Counts struct {
	GC    int // symbols classified as G or C
	Valid int // symbols classified as A, C, G or T
}

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{GC: c.GC + o.GC, Valid: c.Valid + o.Valid}
}

// Ratio returns GC/Valid as a float64 in [0.0, 1.0].
//
// When Valid is 0 (empty view, or nothing but ambiguous symbols) it
// returns 0.0. That sentinel is overloaded: 0.0 also means "all AT".
// Callers needing the distinction must inspect Valid themselves.
func (c Counts) Ratio() float64 {
	if c.Valid == 0 {
		return 0.0
	}
	return float64(c.GC) / float64(c.Valid)
}

// Count scans seq once, in order, classifying each byte exactly once.
// O(len(seq)) time, no allocation, no side effects.
func Count(seq []byte) Counts {
	var c Counts
	for _, b := range seq {
		switch b {
		case 'G', 'C', 'g', 'c':
			c.GC++
			c.Valid++
		case 'A', 'T', 'a', 't':
			c.Valid++
		}
	}
	return c
}

// Content returns the GC fraction of seq: the number of G/C bases over
// the number of unambiguous bases, both cases recognized.
//
// The slice is a read-only view; Content never mutates or retains it.
// Empty input and input with no recognized bases both yield 0.0.
func Content(seq []byte) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	return Count(seq).Ratio()
}
