// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"gcscan-core/scan"
	"gcscan/internal/common"
	"gcscan/internal/jsonlutil"
	"gcscan/internal/output"
)

// StartReportJSONLWriter streams each scan.Report as one JSON line (v1).
func StartReportJSONLWriter(out io.Writer, bufSize int) (chan<- scan.Report, <-chan error) {
	return jsonlutil.Start[scan.Report](out, bufSize,
		func(enc *json.Encoder, r scan.Report) error {
			return enc.Encode(output.ToAPIReport(r))
		},
		IsBrokenPipe,
	)
}

// StartSortedReportJSONLWriter buffers all reports, sorts them, then
// emits one JSON line each. JSONL is otherwise streaming, so --sort
// costs a full buffer here like it does for the other formats.
func StartSortedReportJSONLWriter(out io.Writer, bufSize int) (chan<- scan.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan scan.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []scan.Report
		for r := range in {
			buf = append(buf, r)
		}
		common.SortReports(buf)

		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		for _, r := range buf {
			if err := enc.Encode(output.ToAPIReport(r)); err != nil {
				errCh <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	return in, errCh
}
