package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scattering-report/internal/core/domain"
	"scattering-report/internal/testutil"
)

func validRawTable() domain.RawTable {
	return domain.RawTable{
		{VoltageKV: 20, Sp5: 7.89e-3, Sp10: 4.75e-3, Sp15: 2.58e-3},
		{VoltageKV: 40, Sp5: 4.39e-3, Sp10: 2.45e-3, Sp15: 1.24e-3},
		{VoltageKV: 60, Sp5: 3.08e-3, Sp10: 1.69e-3, Sp15: 8.01e-4},
		{VoltageKV: 100, Sp5: 1.99e-3, Sp10: 1.04e-3, Sp15: 4.71e-4},
	}
}

func TestReportService_Run(t *testing.T) {
	reader := new(testutil.MockDatasetReader)
	renderer := new(testutil.MockChartRenderer)
	exporter := new(testutil.MockSummaryExporter)
	svc := NewReportService(reader, renderer, exporter)

	chartPath := filepath.Join(t.TempDir(), "fit.png")
	summaryPath := filepath.Join(t.TempDir(), "summary.xlsx")

	reader.On("Read", mock.Anything, "data.csv").Return(validRawTable(), nil)
	renderer.On("Render", mock.Anything, mock.AnythingOfType("domain.LogTable"), mock.AnythingOfType("[]domain.PredictionCurve")).Return(nil)
	exporter.On("Export", summaryPath, mock.AnythingOfType("*domain.Report")).Return(nil)

	report, err := svc.Run(context.Background(), RunOptions{
		DatasetPath: "data.csv",
		ChartPath:   chartPath,
		SummaryPath: summaryPath,
		Grid:        DefaultGrid(),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, 4, report.Rows)
	require.Len(t, report.Fits, 3)
	require.Len(t, report.Summary, 3)

	// Cross sections fall with voltage, so every fitted slope is negative.
	for _, fit := range report.Fits {
		assert.Negative(t, fit.Slope)
	}
	reader.AssertExpectations(t)
	renderer.AssertExpectations(t)
	exporter.AssertExpectations(t)
}

func TestReportService_Run_SkipsOptionalOutputs(t *testing.T) {
	reader := new(testutil.MockDatasetReader)
	renderer := new(testutil.MockChartRenderer)
	exporter := new(testutil.MockSummaryExporter)
	svc := NewReportService(reader, renderer, exporter)

	reader.On("Read", mock.Anything, "data.csv").Return(validRawTable(), nil)

	report, err := svc.Run(context.Background(), RunOptions{DatasetPath: "data.csv", Grid: DefaultGrid()})
	require.NoError(t, err)
	require.Len(t, report.Summary, 3)

	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
	exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
}

func TestReportService_Run_LoadError(t *testing.T) {
	reader := new(testutil.MockDatasetReader)
	svc := NewReportService(reader, new(testutil.MockChartRenderer), new(testutil.MockSummaryExporter))

	reader.On("Read", mock.Anything, "missing.csv").Return(nil, domain.ErrDatasetNotFound)

	_, err := svc.Run(context.Background(), RunOptions{DatasetPath: "missing.csv", Grid: DefaultGrid()})
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
}

func TestReportService_Run_TwoRowsAbortsBeforeRender(t *testing.T) {
	reader := new(testutil.MockDatasetReader)
	renderer := new(testutil.MockChartRenderer)
	svc := NewReportService(reader, renderer, new(testutil.MockSummaryExporter))

	two := domain.RawTable{
		{VoltageKV: 20, Sp5: 7.89e-3, Sp10: 4.75e-3, Sp15: 2.58e-3},
		{VoltageKV: 100, Sp5: 1.99e-3, Sp10: 1.04e-3, Sp15: 4.71e-4},
	}
	reader.On("Read", mock.Anything, "two.csv").Return(two, nil)

	_, err := svc.Run(context.Background(), RunOptions{
		DatasetPath: "two.csv",
		ChartPath:   filepath.Join(t.TempDir(), "fit.png"),
		Grid:        DefaultGrid(),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_Run_NonPositiveValue(t *testing.T) {
	reader := new(testutil.MockDatasetReader)
	svc := NewReportService(reader, new(testutil.MockChartRenderer), new(testutil.MockSummaryExporter))

	bad := validRawTable()
	bad[1].Sp15 = -1e-4
	reader.On("Read", mock.Anything, "bad.csv").Return(bad, nil)

	_, err := svc.Run(context.Background(), RunOptions{DatasetPath: "bad.csv", Grid: DefaultGrid()})
	assert.ErrorIs(t, err, domain.ErrNonPositiveValue)
}
