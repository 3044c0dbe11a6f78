// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"gcscan-core/fasta"
	"gcscan-core/scan"
	"gcscan/internal/common"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	ChunkSize int // FASTA chunking window; 0 disables chunking
}

// key identifies one logical record across its chunks.
type key struct {
	file string
	base string
}

// baseID strips the chunker's ":start-end" suffix. Only applied when
// chunking is on, so natural IDs like "chr1:100-200" survive intact in
// whole-record mode.
func baseID(id string, chunkSize int) string {
	if chunkSize <= 0 {
		return id
	}
	base, _, ok := common.SplitChunkSuffix(id)
	if !ok {
		return id
	}
	return base
}

// ForEachReport streams whole-record scan.Reports to the caller via
// visit. It reads records (or chunks) from seqFiles, scans them on the
// worker pool, merges chunk partials by record, and visits each record
// as soon as its last chunk is scanned, in input order. Serial and
// parallel runs produce identical output, and memory stays bounded by
// the records in flight rather than the input size.
// It returns the first error encountered (including cancellation).
func ForEachReport(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	sc *scan.Scanner,
	visit func(scan.Report) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		rec        fasta.Record
		sourceFile string
		ord        int // ordinal of the logical record, assigned at feed time
	}
	// A result is either a scanned partial (expect == 0) or the
	// feeder's completion mark carrying the record's chunk count.
	type result struct {
		rep    scan.Report
		ord    int
		expect int
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					rep := sc.Scan(baseID(j.rec.ID, cfg.ChunkSize), j.rec.Seq)
					rep.SourceFile = j.sourceFile

					select {
					case results <- result{rep: rep, ord: j.ord}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: merge partials per ordinal and flush a record once
	// its chunk count is known and met, strictly in ordinal order.
	type entry struct {
		rep    scan.Report
		got    int
		expect int // 0 until the completion mark arrives
	}
	var (
		cwg      sync.WaitGroup
		visitErr error
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]*entry, cfg.Threads*4)
		next := 0
		for r := range results {
			e, ok := pending[r.ord]
			if !ok {
				e = &entry{}
				pending[r.ord] = e
			}
			if r.expect > 0 {
				e.expect = r.expect
			} else {
				if e.got == 0 {
					e.rep = r.rep
				} else {
					scan.Merge(&e.rep, r.rep)
				}
				e.got++
			}
			for {
				nx, ok := pending[next]
				if !ok || nx.expect == 0 || nx.got < nx.expect {
					break
				}
				if visitErr == nil {
					if err := visit(nx.rep); err != nil {
						visitErr = err
					}
				}
				delete(pending, next)
				next++
			}
		}
		// Anything left is incomplete: its jobs were dropped by
		// cancellation or its file died mid-stream. Never emit those.
	}()

	// Feed work. Whole records are marked complete as soon as they are
	// handed to a worker. With chunking on, the chunker emits a
	// record's chunks contiguously, so each contiguous (file, base)
	// run is one logical record; its chunk count goes out as the
	// completion mark when the run ends.
	var (
		feedErr  error
		cur      key
		curOrd   = -1
		curCount int
	)
	finish := func() bool {
		if curCount == 0 {
			return true
		}
		ord, n := curOrd, curCount
		curCount = 0
		select {
		case results <- result{ord: ord, expect: n}:
			return true
		case <-ctx.Done():
			return false
		}
	}
feed:
	for _, fa := range seqFiles {
		rch, err := fasta.StreamCtxPath(ctx, fa, cfg.ChunkSize)
		if err != nil {
			// Keep scanning other files; first error will be returned.
			if feedErr == nil {
				feedErr = err
			}
			continue
		}
		for rec := range rch {
			if cfg.ChunkSize <= 0 {
				curOrd++
				select {
				case <-ctx.Done():
					break feed
				case jobs <- job{rec: rec, sourceFile: fa, ord: curOrd}:
				}
				select {
				case <-ctx.Done():
					break feed
				case results <- result{ord: curOrd, expect: 1}:
				}
				continue
			}
			k := key{file: fa, base: baseID(rec.ID, cfg.ChunkSize)}
			if k != cur || curOrd < 0 {
				if !finish() {
					break feed
				}
				cur = k
				curOrd++
			}
			curCount++
			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{rec: rec, sourceFile: fa, ord: curOrd}:
			}
		}
	}
	if ctx.Err() == nil {
		_ = finish()
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if feedErr != nil {
		return feedErr
	}
	return visitErr
}
