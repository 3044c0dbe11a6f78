// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"gcscan-core/scan"
	"gcscan/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams
// results via send. It returns the number of kept outputs and the
// first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	sc *scan.Scanner,
	visit func(scan.Report) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachReport(ctx, cfg, seqFiles, sc, func(r scan.Report) error {
		keep, out, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
