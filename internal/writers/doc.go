// Package writers owns the output goroutines: one writer per format,
// fed over a channel, reporting the first write error (with broken
// pipes suppressed so `gcscan ... | head` exits cleanly).
package writers
