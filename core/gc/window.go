// core/gc/window.go
package gc

// Window is one slice of a per-sequence GC profile. Coordinates are
// 0-based, end-exclusive, in record-local space.
type Window struct {
	Start  int
	End    int
	Counts Counts
}

// Ratio returns the window's GC fraction (0.0 when no valid bases).
func (w Window) Ratio() float64 { return w.Counts.Ratio() }

// Windows computes a fixed-width GC profile over seq.
//
// size <= 0 yields nil. step <= 0 means non-overlapping windows
// (step = size). The final window is emitted even when shorter than
// size, so every base is covered exactly once at step == size.
func Windows(seq []byte, size, step int) []Window {
	if size <= 0 || len(seq) == 0 {
		return nil
	}
	if step <= 0 {
		step = size
	}
	out := make([]Window, 0, (len(seq)+step-1)/step)
	for off := 0; off < len(seq); off += step {
		end := off + size
		if end > len(seq) {
			end = len(seq)
		}
		out = append(out, Window{Start: off, End: end, Counts: Count(seq[off:end])})
		if end == len(seq) {
			break
		}
	}
	return out
}
