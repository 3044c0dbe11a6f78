// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"gcscan-core/scan"
)

// FormatGC renders a GC fraction with fixed precision for TSV/BED rows.
func FormatGC(r float64) string {
	return strconv.FormatFloat(r, 'f', 6, 64)
}

// FormatReportRowTSV returns the 11 base columns (no trailing newline).
func FormatReportRowTSV(r scan.Report) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s",
		r.SourceFile, r.SequenceID, r.Length,
		r.Comp.A, r.Comp.C, r.Comp.G, r.Comp.T, r.Comp.Other,
		r.GC.GC, r.GC.Valid, FormatGC(r.GCContent),
	)
}
