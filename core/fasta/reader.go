// core/fasta/reader.go
package fasta

import "context"

// StreamCtxPath is the ctx-aware channel wrapper around StreamPathCtx.
// For non-stdin paths, open errors are reported immediately; scan-time
// errors terminate the channel without being propagated.
func StreamCtxPath(ctx context.Context, path string, chunkSize int) (<-chan Record, error) {
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	go func() {
		defer close(out)
		_ = StreamPathCtx(ctx, path, chunkSize, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, nil
}

// Stream is the legacy helper that uses a background context.
func Stream(path string, chunkSize int) (<-chan Record, error) {
	return StreamCtxPath(context.Background(), path, chunkSize)
}
