// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"gcscan-core/scan"
	"gcscan/internal/common"
	"gcscan/internal/output"
	"gcscan/internal/pretty"
)

// StartReportWriter spins up a writer goroutine for scan.Report items.
// (Backward-compatible wrapper using pretty.DefaultOptions)
func StartReportWriter(out io.Writer, format string, sort bool, header bool, prettyMode bool, bufSize int) (chan<- scan.Report, <-chan error) {
	return StartReportWriterWithPrettyOptions(out, format, sort, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartReportWriterWithPrettyOptions allows customizing the pretty renderer.
func StartReportWriterWithPrettyOptions(out io.Writer, format string, sort bool, header bool, prettyMode bool, popt pretty.Options, bufSize int) (chan<- scan.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan scan.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []scan.Report
			for r := range in {
				buf = append(buf, r)
			}
			if sort {
				common.SortReports(buf)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatBED:
			if sort {
				var buf []scan.Report
				for r := range in {
					buf = append(buf, r)
				}
				common.SortReports(buf)
				err = output.WriteBED(out, buf)
			} else {
				err = output.StreamBED(out, in)
			}

		case output.FormatText:
			render := func(r scan.Report) string { return pretty.RenderReportWithOptions(r, popt) }
			if sort {
				var buf []scan.Report
				for r := range in {
					buf = append(buf, r)
				}
				common.SortReports(buf)
				err = output.WriteTextWithRenderer(out, buf, header, prettyMode, render)
			} else {
				err = output.StreamTextWithRenderer(out, in, header, prettyMode, render)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block after a write error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
