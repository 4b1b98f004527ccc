package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"scattering-report/internal/core/domain"
)

const summarySheet = "Coefficients"

// XLSXExporter writes the coefficient summary table to an xlsx workbook.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Export(path string, report *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	header := []interface{}{"aperture_mrad", "slope_mean", "slope_stderr", "intercept_mean", "intercept_stderr"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range report.Summary {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{int(row.Aperture), row.Slope, row.SlopeStderr, row.Intercept, row.InterceptStderr}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	// Run metadata below the table, for traceability of the artifact.
	meta := fmt.Sprintf("A%d", len(report.Summary)+3)
	info := []interface{}{"run_id", report.RunID.String(), "generated_at", report.GeneratedAt.Format("2006-01-02 15:04:05"), "rows", report.Rows}
	if err := f.SetSheetRow(summarySheet, meta, &info); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
