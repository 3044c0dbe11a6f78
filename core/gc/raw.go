// core/gc/raw.go
package gc

import "unsafe"

// ContentRaw computes GC content over a caller-owned buffer described
// by a raw pointer and a length, for callers arriving from an
// FFI-style contract rather than a Go slice.
//
// Precondition (caller-enforced, not runtime-checked): p must point to
// at least n readable bytes for the duration of the call. Violating
// this is undefined behavior and cannot be detected here. The buffer
// is never written through.
//
// n <= 0 and p == nil are defended explicitly and yield 0.0.
func ContentRaw(p unsafe.Pointer, n int) float64 {
	if p == nil || n <= 0 {
		return 0.0
	}
	return Count(unsafe.Slice((*byte)(p), n)).Ratio()
}

// ContentString is the zero-copy string entry point. The string's
// bytes are viewed in place, never copied or modified.
func ContentString(s string) float64 {
	if len(s) == 0 {
		return 0.0
	}
	return Count(unsafe.Slice(unsafe.StringData(s), len(s))).Ratio()
}
