// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gcscan-core/scan"
	"gcscan/internal/appcore"
	"gcscan/internal/cli"
	"gcscan/internal/version"
	"gcscan/internal/visitors"
	"gcscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("gcscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "gcscan version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	coreOpts := appcore.Options{
		SeqFiles: opts.SeqFiles,
		Window:   opts.Window, Step: opts.Step, WithCpG: opts.WithCpG,
		Threads: opts.Threads, ChunkSize: opts.ChunkSize,
		Quiet: opts.Quiet, EmptyExitCode: opts.EmptyExitCode,
	}

	var visit appcore.VisitorFunc[scan.Report]
	if opts.MinGC > 0.0 || opts.MaxGC < 1.0 || opts.MinLength > 0 {
		visit = visitors.Range{MinGC: opts.MinGC, MaxGC: opts.MaxGC, MinValid: opts.MinLength}.Visit
	} else {
		visit = visitors.PassThrough{}.Visit
	}

	writer := appcore.NewReportWriterFactory(opts.Output, opts.Sort, opts.Header, opts.Pretty)
	return appcore.Run[scan.Report](parent, stdout, stderr, coreOpts, visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
