// core/scan/scan.go
package scan

import (
	"gcscan-core/gc"
)

// Config holds scan parameters.
type Config struct {
	Window  int  // window size for per-sequence GC profiles (0=off)
	Step    int  // window step (0 = non-overlapping)
	WithCpG bool // also compute the CpG observed/expected ratio
}

// Report is the per-record result of a scan. For chunked records it
// starts as a partial and is combined with Merge before emission.
type Report struct {
	SourceFile string
	SequenceID string

	Length int // total bytes scanned, valid or not
	Comp   gc.Composition
	GC     gc.Counts

	GCContent float64
	CpGOE     float64

	Windows []gc.Window // populated only when Config.Window > 0
}

// Scanner computes GC reports with given config.
type Scanner struct {
	cfg Config
}

// New creates a new Scanner.
func New(c Config) *Scanner { return &Scanner{cfg: c} }

// Scan computes the report for one sequence (or one chunk of one).
func (s *Scanner) Scan(seqID string, seq []byte) Report {
	comp := gc.Profile(seq)
	counts := comp.GC()
	r := Report{
		SequenceID: seqID,
		Length:     len(seq),
		Comp:       comp,
		GC:         counts,
		GCContent:  counts.Ratio(),
	}
	if s.cfg.WithCpG {
		r.CpGOE = gc.ObservedExpectedCpG(seq)
	}
	if s.cfg.Window > 0 {
		r.Windows = gc.Windows(seq, s.cfg.Window, s.cfg.Step)
	}
	return r
}

// Merge folds the partial report src into dst (same record, later
// chunk) and recomputes the derived ratio. Window and CpG profiles do
// not merge across chunks; the pipeline disables chunking when either
// is requested.
func Merge(dst *Report, src Report) {
	dst.Length += src.Length
	dst.Comp = dst.Comp.Add(src.Comp)
	dst.GC = dst.GC.Add(src.GC)
	dst.GCContent = dst.GC.Ratio()
}
