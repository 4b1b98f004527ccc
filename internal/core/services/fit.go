package services

import (
	"fmt"
	"math"

	"scattering-report/internal/core/domain"
)

// Fit performs an ordinary-least-squares simple linear regression of
// y = ln(Sp_aperture) against x = ln(E0) and reports the slope and intercept
// with their standard errors. At least 3 observations are required so the
// residual variance has positive degrees of freedom (n-2).
func Fit(table domain.LogTable, aperture domain.Aperture) (domain.FitResult, error) {
	n := len(table)
	if n < 3 {
		return domain.FitResult{}, fmt.Errorf("aperture %s: %d observations: %w", aperture, n, domain.ErrInsufficientData)
	}

	var sumX, sumY float64
	for _, row := range table {
		sumX += row.LnVoltageEV
		sumY += row.LnSp(aperture)
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, sxy float64
	for _, row := range table {
		dx := row.LnVoltageEV - meanX
		sxx += dx * dx
		sxy += dx * (row.LnSp(aperture) - meanY)
	}
	if sxx == 0 {
		return domain.FitResult{}, fmt.Errorf("aperture %s: %w", aperture, domain.ErrDegenerateX)
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	var rss float64
	for _, row := range table {
		resid := row.LnSp(aperture) - (intercept + slope*row.LnVoltageEV)
		rss += resid * resid
	}
	s := math.Sqrt(rss / float64(n-2))

	return domain.FitResult{
		Aperture:        aperture,
		Slope:           slope,
		SlopeStderr:     s / math.Sqrt(sxx),
		Intercept:       intercept,
		InterceptStderr: s * math.Sqrt(1.0/float64(n)+meanX*meanX/sxx),
		N:               n,
	}, nil
}

// FitAll fits every aperture in ascending order, aborting on the first
// aperture that cannot be fitted.
func FitAll(table domain.LogTable) ([]domain.FitResult, error) {
	fits := make([]domain.FitResult, 0, len(domain.Apertures()))
	for _, a := range domain.Apertures() {
		fit, err := Fit(table, a)
		if err != nil {
			return nil, err
		}
		fits = append(fits, fit)
	}
	return fits, nil
}
