package services

import (
	"math"

	"scattering-report/internal/core/domain"
)

// Grid describes the closed ln(E0) interval a fitted line is evaluated over.
type Grid struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultGrid spans ln(E0) for roughly 20-110 kV, matching the voltage range
// of the tabulated data.
func DefaultGrid() Grid {
	return Grid{Min: 9.90, Max: 11.6, Step: 0.01}
}

// Predict evaluates the fitted line over the grid, producing
// floor((max-min)/step)+1 points with x_i = min + i·step.
func Predict(fit domain.FitResult, grid Grid) (domain.PredictionCurve, error) {
	if grid.Step <= 0 || grid.Min >= grid.Max {
		return domain.PredictionCurve{}, domain.ErrInvalidGrid
	}
	n := int(math.Floor((grid.Max-grid.Min)/grid.Step)) + 1
	points := make([]domain.Point, n)
	for i := 0; i < n; i++ {
		x := grid.Min + float64(i)*grid.Step
		points[i] = domain.Point{X: x, Y: fit.Intercept + fit.Slope*x}
	}
	return domain.PredictionCurve{Aperture: fit.Aperture, Points: points}, nil
}
