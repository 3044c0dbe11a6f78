// Package pipeline streams FASTA records through a Scanner worker
// pool, merges chunk partials back into whole-record reports, and
// calls a visit callback in first-seen record order.
package pipeline
