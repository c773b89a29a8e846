package resample

import (
	"fmt"
	"strings"
)

// Download artifact naming, shared with the HTTP layer.
const (
	CSVFilename = "interpolated_data.csv"
	CSVMIMEType = "text/csv"

	csvHeader = "X (Strain),Y (Stress)"
)

// CSV renders the resampled curve as CSV with four decimal places per column.
func (r *Result) CSV() string {
	var b strings.Builder
	b.WriteString(csvHeader)
	for i := range r.Resampled.Y {
		fmt.Fprintf(&b, "\n%.4f,%.4f", r.Resampled.X[i], r.Resampled.Y[i])
	}
	return b.String()
}
