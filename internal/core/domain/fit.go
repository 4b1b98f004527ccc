package domain

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// Regression results
// ============================================================================

// FitResult holds the ordinary-least-squares coefficients for one aperture's
// fit of ln(Sp) against ln(E0). Immutable once computed.
type FitResult struct {
	Aperture        Aperture `json:"aperture_mrad"`
	Slope           float64  `json:"slope_mean"`
	SlopeStderr     float64  `json:"slope_stderr"`
	Intercept       float64  `json:"intercept_mean"`
	InterceptStderr float64  `json:"intercept_stderr"`
	N               int      `json:"n"`
}

// Point is one (x, y) sample of a fitted line.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PredictionCurve is a fitted line evaluated over a dense grid, used only for
// rendering.
type PredictionCurve struct {
	Aperture Aperture `json:"aperture_mrad"`
	Points   []Point  `json:"points"`
}

// ============================================================================
// Summary
// ============================================================================

// SummaryRow is one aperture's coefficients rounded to 4 decimal places.
type SummaryRow struct {
	Aperture        Aperture `json:"aperture_mrad"`
	Slope           float64  `json:"slope_mean"`
	SlopeStderr     float64  `json:"slope_stderr"`
	Intercept       float64  `json:"intercept_mean"`
	InterceptStderr float64  `json:"intercept_stderr"`
}

// SummaryTable holds one SummaryRow per aperture in ascending aperture order.
type SummaryTable []SummaryRow

// Report is the product of one pipeline invocation.
type Report struct {
	RunID       uuid.UUID    `json:"run_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Rows        int          `json:"rows"`
	Fits        []FitResult  `json:"fits"`
	Summary     SummaryTable `json:"summary"`
}
