package services

import (
	"math"
	"sort"

	"scattering-report/internal/core/domain"
)

// Summarize assembles the fitted coefficients into one table, one row per
// aperture in ascending aperture order regardless of the order the fits were
// supplied in. Every numeric field is rounded to 4 decimal places using
// round-half-away-from-zero.
func Summarize(fits []domain.FitResult) domain.SummaryTable {
	table := make(domain.SummaryTable, 0, len(fits))
	for _, fit := range fits {
		table = append(table, domain.SummaryRow{
			Aperture:        fit.Aperture,
			Slope:           round4(fit.Slope),
			SlopeStderr:     round4(fit.SlopeStderr),
			Intercept:       round4(fit.Intercept),
			InterceptStderr: round4(fit.InterceptStderr),
		})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Aperture < table[j].Aperture })
	return table
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
