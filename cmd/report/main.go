package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"scattering-report/internal/adapters/secondary/dataset"
	"scattering-report/internal/adapters/secondary/render"
	"scattering-report/internal/config"
	"scattering-report/internal/core/domain"
	"scattering-report/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// The only positional argument is the dataset path, overriding the
	// configured default.
	datasetPath := cfg.Dataset.Path
	if len(os.Args) > 1 {
		datasetPath = os.Args[1]
	}

	svc := services.NewReportService(
		dataset.NewLoader(),
		render.NewChartRenderer(),
		render.NewXLSXExporter(),
	)

	report, err := svc.Run(context.Background(), services.RunOptions{
		DatasetPath: datasetPath,
		ChartPath:   cfg.Output.ChartPath,
		SummaryPath: cfg.Output.SummaryPath,
		Grid: services.Grid{
			Min:  cfg.Grid.Min,
			Max:  cfg.Grid.Max,
			Step: cfg.Grid.Step,
		},
	})
	if err != nil {
		log.Fatalf("run analysis: %v", err)
	}

	printSummary(report.Summary)
	log.WithFields(log.Fields{"run_id": report.RunID, "rows": report.Rows}).Info("report complete")
}

func printSummary(table domain.SummaryTable) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "aperture\tslope\tslope stderr\tintercept\tintercept stderr")
	for _, row := range table {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			row.Aperture, row.Slope, row.SlopeStderr, row.Intercept, row.InterceptStderr)
	}
	w.Flush()
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
