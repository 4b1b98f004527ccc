package ports

import (
	"io"

	"scattering-report/internal/core/domain"
)

// ChartRenderer draws the three scatter/line aperture series onto one chart
// and writes the encoded image to w.
type ChartRenderer interface {
	Render(w io.Writer, table domain.LogTable, curves []domain.PredictionCurve) error
}

// SummaryExporter persists the coefficient table outside the console, e.g.
// as a spreadsheet.
type SummaryExporter interface {
	Export(path string, report *domain.Report) error
}
