package visitors

import "gcscan-core/scan"

// PassThrough returns the report unchanged.
type PassThrough struct{}

func (PassThrough) Visit(r scan.Report) (keep bool, out scan.Report, err error) {
	return true, r, nil
}
