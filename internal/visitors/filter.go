// internal/visitors/filter.go
package visitors

import "gcscan-core/scan"

// Range keeps reports whose GC content lies within [MinGC, MaxGC] and
// whose valid-base count is at least MinValid. Sequences with no valid
// bases are kept only when MinGC is 0 and MinValid is 0, preserving
// the 0.0-sentinel behavior of the calculator.
type Range struct {
	MinGC    float64
	MaxGC    float64
	MinValid int
}

func (f Range) Visit(r scan.Report) (keep bool, out scan.Report, err error) {
	if r.GC.Valid < f.MinValid {
		return false, r, nil
	}
	if r.GCContent < f.MinGC || r.GCContent > f.MaxGC {
		return false, r, nil
	}
	return true, r, nil
}
