// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA sequence, or one chunk of one. Chunk IDs carry
// a ":start-end" suffix in record-local coordinates so downstream
// consumers can reassemble partials.
type Record struct {
	ID  string
	Seq []byte
}

// StreamCtx parses FASTA from r and emits records via emit.
//
// chunkSize <= 0 emits each record whole. Otherwise records longer
// than chunkSize are emitted as consecutive non-overlapping windows
// with suffixed IDs. GC counting is additive across windows, so no
// overlap is needed.
//
// Cancellation via ctx is honored promptly, both between lines and
// between chunks. emit may return a non-nil error to stop early.
func StreamCtx(ctx context.Context, r io.Reader, chunkSize int, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if id == "" && len(seq) == 0 {
			return nil
		}
		if chunkSize <= 0 || chunkSize >= len(seq) {
			return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
		}
		for off := 0; off < len(seq); off += chunkSize {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			end := off + chunkSize
			if end > len(seq) {
				end = len(seq)
			}
			chID := fmt.Sprintf("%s:%d-%d", id, off, end)
			if err := emit(Record{ID: chID, Seq: append([]byte(nil), seq[off:end]...)}); err != nil {
				return err
			}
		}
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" || len(seq) > 0 {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if id != "" || len(seq) > 0 {
		return flush()
	}
	return nil
}

// StreamPathCtx opens path (plain, gzip or "-" for stdin) and streams
// its records through StreamCtx.
func StreamPathCtx(ctx context.Context, path string, chunkSize int, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, chunkSize, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
