// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"gcscan-core/scan"
	"gcscan/internal/output"
	"gcscan/internal/writers"
)

// ReportWriterFactory selects the writer goroutine for the configured
// output format.
type ReportWriterFactory struct {
	Format string
	Sort   bool
	Header bool
	Pretty bool
}

func NewReportWriterFactory(format string, sort, header, pretty bool) ReportWriterFactory {
	return ReportWriterFactory{Format: format, Sort: sort, Header: header, Pretty: pretty}
}

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- scan.Report, <-chan error) {
	if w.Format == output.FormatJSONL {
		if w.Sort {
			return writers.StartSortedReportJSONLWriter(out, bufSize)
		}
		return writers.StartReportJSONLWriter(out, bufSize)
	}
	return writers.StartReportWriter(out, w.Format, w.Sort, w.Header, w.Pretty, bufSize)
}
