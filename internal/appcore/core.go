// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"gcscan-core/scan"
	"gcscan/internal/cmdutil"
	"gcscan/internal/pipeline"
	"gcscan/internal/runutil"
	"gcscan/internal/writers"
)

type Options struct {
	SeqFiles []string

	Window  int
	Step    int
	WithCpG bool

	Threads   int
	ChunkSize int

	Quiet         bool
	EmptyExitCode int
}

type VisitorFunc[T any] func(scan.Report) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	chunkSize, warns := runutil.ValidateChunking(o.Window, o.WithCpG, o.ChunkSize)
	for _, w := range warns {
		cmdutil.Warnf(stderr, o.Quiet, "%s", w)
	}

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	sc := scan.New(scan.Config{
		Window:  o.Window,
		Step:    o.Step,
		WithCpG: o.WithCpG,
	})

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{
			Threads:   thr,
			ChunkSize: chunkSize,
		},
		o.SeqFiles,
		sc,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		return o.EmptyExitCode
	}
	return 0
}
