// internal/runutil/runutil.go
package runutil

// ValidateChunking decides whether worker chunking is allowed and
// returns (chunkSize, warnings).
//
// Rules:
//   - --window (or --cpg) needs whole sequences in record-local
//     coordinates, so either disables chunking (ignore --chunk-size)
//   - --chunk-size <= 0 → no chunking
func ValidateChunking(window int, withCpG bool, chunkSize int) (int, []string) {
	var warns []string
	if window > 0 || withCpG {
		if chunkSize != 0 {
			warns = append(warns, "warning: --window/--cpg disable chunking; ignoring --chunk-size")
		}
		return 0, warns
	}
	if chunkSize <= 0 {
		return 0, nil
	}
	return chunkSize, nil
}
