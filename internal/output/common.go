// internal/output/common.go
package output

// Output format names shared by writers and CLI validation.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatBED   = "bed"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsequence_id\tlength\ta\tc\tg\tt\tother\tgc_count\tvalid_bases\tgc_content"
