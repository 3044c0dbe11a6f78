// internal/output/bed.go
package output

import (
	"fmt"
	"io"

	"gcscan-core/scan"
)

// WriteBED emits one BED line per GC window: chrom, start, end, name,
// and the GC fraction in the score column. Reports without windows
// produce no lines.
func WriteBED(w io.Writer, list []scan.Report) error {
	for _, r := range list {
		if err := writeBEDReport(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamBED is the streaming variant over a channel.
func StreamBED(w io.Writer, in <-chan scan.Report) error {
	for r := range in {
		if err := writeBEDReport(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeBEDReport(w io.Writer, r scan.Report) error {
	for i, win := range r.Windows {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s.%d\t%s\n",
			r.SequenceID, win.Start, win.End, r.SequenceID, i, FormatGC(win.Ratio()))
		if err != nil {
			return err
		}
	}
	return nil
}
