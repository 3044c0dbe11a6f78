// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"gcscan-core/scan"
)

// WriteTextWithRenderer writes buffered reports as TSV, optionally
// followed by a rendered block per report (for --pretty).
func WriteTextWithRenderer(w io.Writer, list []scan.Report, header bool, pretty bool, render func(scan.Report) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatReportRowTSV(r)); err != nil {
			return err
		}
		if pretty {
			if _, err := fmt.Fprintln(w, render(r)); err != nil {
				return err
			}
		}
	}
	return nil
}

// StreamTextWithRenderer is the streaming variant over a channel.
func StreamTextWithRenderer(w io.Writer, in <-chan scan.Report, header bool, pretty bool, render func(scan.Report) string) error {
	wroteHeader := !header
	for r := range in {
		if !wroteHeader {
			if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
				return err
			}
			wroteHeader = true
		}
		if _, err := fmt.Fprintln(w, FormatReportRowTSV(r)); err != nil {
			return err
		}
		if pretty {
			if _, err := fmt.Fprintln(w, render(r)); err != nil {
				return err
			}
		}
	}
	return nil
}
