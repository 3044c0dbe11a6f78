// internal/output/json.go
package output

import (
	"io"

	"gcscan-core/scan"
	"gcscan/internal/jsonutil"
	"gcscan/pkg/api"
)

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(r scan.Report) api.ReportV1 {
	v := api.ReportV1{
		SourceFile: r.SourceFile,
		SequenceID: r.SequenceID,
		Length:     r.Length,
		A:          r.Comp.A,
		C:          r.Comp.C,
		G:          r.Comp.G,
		T:          r.Comp.T,
		Other:      r.Comp.Other,
		GCCount:    r.GC.GC,
		ValidBases: r.GC.Valid,
		GCContent:  r.GCContent,
		CpGOE:      r.CpGOE,
	}
	if len(r.Windows) > 0 {
		v.Windows = make([]api.WindowV1, 0, len(r.Windows))
		for _, w := range r.Windows {
			v.Windows = append(v.Windows, api.WindowV1{
				Start:     w.Start,
				End:       w.End,
				GCContent: w.Ratio(),
			})
		}
	}
	return v
}

func toAPIReports(list []scan.Report) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []scan.Report) error {
	return jsonutil.EncodePretty(w, toAPIReports(list))
}
