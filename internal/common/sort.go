// internal/common/sort.go
package common

import (
	"sort"

	"gcscan-core/scan"
)

// LessReport defines a stable order for reports (for --sort).
func LessReport(a, b scan.Report) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	return a.SequenceID < b.SequenceID
}

func SortReports(rs []scan.Report) {
	sort.Slice(rs, func(i, j int) bool { return LessReport(rs[i], rs[j]) })
}
