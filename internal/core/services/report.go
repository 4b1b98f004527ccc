package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"scattering-report/internal/core/domain"
	ports "scattering-report/internal/core/ports/output"
)

// RunOptions configures one pipeline invocation.
type RunOptions struct {
	DatasetPath string
	ChartPath   string // "" skips chart rendering
	SummaryPath string // "" skips summary export
	Grid        Grid
}

// ReportService runs the full analysis pipeline exactly once per invocation:
// load, transform, fit per aperture, predict, render, summarize. Any stage
// error is terminal for the run.
type ReportService struct {
	reader   ports.DatasetReader
	renderer ports.ChartRenderer
	exporter ports.SummaryExporter
}

func NewReportService(reader ports.DatasetReader, renderer ports.ChartRenderer, exporter ports.SummaryExporter) *ReportService {
	return &ReportService{reader: reader, renderer: renderer, exporter: exporter}
}

func (s *ReportService) Run(ctx context.Context, opts RunOptions) (*domain.Report, error) {
	runID := uuid.New()
	logger := log.WithField("run_id", runID)

	raw, err := s.reader.Read(ctx, opts.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.WithFields(log.Fields{"path": opts.DatasetPath, "rows": len(raw)}).Info("dataset loaded")

	table, err := Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("transform dataset: %w", err)
	}

	fits, err := FitAll(table)
	if err != nil {
		return nil, err
	}
	for _, fit := range fits {
		logger.WithFields(log.Fields{
			"aperture":  fit.Aperture.String(),
			"slope":     fit.Slope,
			"intercept": fit.Intercept,
		}).Info("regression fitted")
	}

	if opts.ChartPath != "" {
		curves := make([]domain.PredictionCurve, 0, len(fits))
		for _, fit := range fits {
			curve, err := Predict(fit, opts.Grid)
			if err != nil {
				return nil, fmt.Errorf("predict %s: %w", fit.Aperture, err)
			}
			curves = append(curves, curve)
		}
		if err := s.renderChart(opts.ChartPath, table, curves); err != nil {
			return nil, err
		}
		logger.WithField("path", opts.ChartPath).Info("chart rendered")
	}

	report := &domain.Report{
		RunID:       runID,
		GeneratedAt: time.Now(),
		Rows:        len(raw),
		Fits:        fits,
		Summary:     Summarize(fits),
	}

	if opts.SummaryPath != "" {
		if err := s.exporter.Export(opts.SummaryPath, report); err != nil {
			return nil, fmt.Errorf("export summary: %w", err)
		}
		logger.WithField("path", opts.SummaryPath).Info("summary exported")
	}

	return report, nil
}

func (s *ReportService) renderChart(path string, table domain.LogTable, curves []domain.PredictionCurve) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := s.renderer.Render(f, table, curves); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
