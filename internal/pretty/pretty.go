// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"gcscan-core/scan"
)

// Options controls the rendered block.
type Options struct {
	BarWidth int // characters in the GC bar
}

var DefaultOptions = Options{BarWidth: 40}

// RenderReport renders a human-readable block under a report row: a
// filled bar for the GC fraction plus the composition breakdown.
func RenderReport(r scan.Report) string {
	return RenderReportWithOptions(r, DefaultOptions)
}

func RenderReportWithOptions(r scan.Report, opt Options) string {
	w := opt.BarWidth
	if w <= 0 {
		w = DefaultOptions.BarWidth
	}
	filled := int(r.GCContent*float64(w) + 0.5)
	if filled > w {
		filled = w
	}
	bar := strings.Repeat("#", filled) + strings.Repeat(".", w-filled)

	var b strings.Builder
	fmt.Fprintf(&b, "  GC [%s] %5.1f%%\n", bar, r.GCContent*100)
	fmt.Fprintf(&b, "  A=%d C=%d G=%d T=%d other=%d (%d bp, %d valid)",
		r.Comp.A, r.Comp.C, r.Comp.G, r.Comp.T, r.Comp.Other, r.Length, r.GC.Valid)
	if r.CpGOE > 0 {
		fmt.Fprintf(&b, " CpG o/e=%.3f", r.CpGOE)
	}
	return b.String()
}
