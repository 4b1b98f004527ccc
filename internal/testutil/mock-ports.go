package testutil

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"scattering-report/internal/core/domain"
)

// MockDatasetReader is a mock of ports.DatasetReader.
type MockDatasetReader struct {
	mock.Mock
}

func (m *MockDatasetReader) Read(ctx context.Context, path string) (domain.RawTable, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RawTable), args.Error(1)
}

// MockChartRenderer is a mock of ports.ChartRenderer.
type MockChartRenderer struct {
	mock.Mock
}

func (m *MockChartRenderer) Render(w io.Writer, table domain.LogTable, curves []domain.PredictionCurve) error {
	args := m.Called(w, table, curves)
	return args.Error(0)
}

// MockSummaryExporter is a mock of ports.SummaryExporter.
type MockSummaryExporter struct {
	mock.Mock
}

func (m *MockSummaryExporter) Export(path string, report *domain.Report) error {
	args := m.Called(path, report)
	return args.Error(0)
}
