// pkg/api/reports_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for per-sequence reports.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	SourceFile string `json:"source_file,omitempty"`
	SequenceID string `json:"sequence_id"`
	Length     int    `json:"length"`

	A     int `json:"a"`
	C     int `json:"c"`
	G     int `json:"g"`
	T     int `json:"t"`
	Other int `json:"other"`

	GCCount    int     `json:"gc_count"`
	ValidBases int     `json:"valid_bases"`
	GCContent  float64 `json:"gc_content"`

	CpGOE   float64    `json:"cpg_oe,omitempty"`
	Windows []WindowV1 `json:"windows,omitempty"`
}

// WindowV1 is one slice of a per-sequence GC profile.
// Coordinates are 0-based, end-exclusive.
type WindowV1 struct {
	Start     int     `json:"start"`
	End       int     `json:"end"`
	GCContent float64 `json:"gc_content"`
}
