// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"gcscan/internal/version"
)

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatBED   = "bed"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string

	// Statistics
	Window  int
	Step    int
	WithCpG bool

	// Filters
	MinLength int
	MinGC     float64
	MaxGC     float64

	// Performance
	Threads   int
	ChunkSize int

	// Output
	Output string
	Pretty bool
	Sort   bool
	Header bool // true unless --no-header

	Quiet         bool
	EmptyExitCode int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: GC content and base composition over FASTA sequences

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA file(s), plain or .gz (repeatable or '-' for stdin) [*]")

	// Statistics
	fs.IntVar(&opt.Window, "window", 0, "per-sequence GC profile window size in bp (0 = whole-sequence only) [0]")
	fs.IntVar(&opt.Step, "step", 0, "window step in bp (0 = non-overlapping) [0]")
	fs.BoolVar(&opt.WithCpG, "cpg", false, "also report the CpG observed/expected ratio [false]")

	// Filters
	fs.IntVar(&opt.MinLength, "min-length", 0, "skip sequences with fewer valid (ACGT) bases [0]")
	fs.Float64Var(&opt.MinGC, "min-gc", 0.0, "report only sequences with GC content >= this [0.0]")
	fs.Float64Var(&opt.MaxGC, "max-gc", 1.0, "report only sequences with GC content <= this [1.0]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.ChunkSize, "chunk-size", 0, "split sequences into N-bp windows for the workers (0 = no chunking) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", FormatText, "output format: text | json | jsonl | bed [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "ASCII GC bar per sequence (text output) [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs for determinism (SourceFile,SequenceID) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.IntVar(&opt.EmptyExitCode, "empty-exit-code", 1, "exit code when no sequence passes the filters [1]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = append([]string(nil), seq...)
	opt.SeqFiles = append(opt.SeqFiles, fs.Args()...) // positional FASTA args
	opt.Header = !noHeader

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.ChunkSize < 0 {
		return opt, errors.New("--chunk-size must be >= 0")
	}
	if opt.Window < 0 {
		return opt, errors.New("--window must be >= 0")
	}
	if opt.Step < 0 {
		return opt, errors.New("--step must be >= 0")
	}
	if opt.Step > 0 && opt.Window == 0 {
		return opt, errors.New("--step requires --window")
	}
	if opt.MinLength < 0 {
		return opt, errors.New("--min-length must be >= 0")
	}
	if opt.MinGC < 0.0 || opt.MinGC > 1.0 || opt.MaxGC < 0.0 || opt.MaxGC > 1.0 {
		return opt, errors.New("--min-gc/--max-gc must be within [0.0, 1.0]")
	}
	if opt.MinGC > opt.MaxGC {
		return opt, fmt.Errorf("--min-gc (%g) exceeds --max-gc (%g)", opt.MinGC, opt.MaxGC)
	}
	switch opt.Output {
	case FormatText, FormatJSON, FormatJSONL, FormatBED:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Output == FormatBED && opt.Window == 0 {
		return opt, errors.New("--output bed requires --window")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
