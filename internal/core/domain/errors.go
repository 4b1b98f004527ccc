package domain

import "errors"

// ============================================================================
// Load Errors
// ============================================================================

var (
	ErrDatasetNotFound   = errors.New("dataset file not found or unreadable")
	ErrUnsupportedFormat = errors.New("unsupported dataset format (want .csv or .xlsx)")
	ErrWrongColumnCount  = errors.New("dataset row does not have exactly 4 columns")
	ErrNonNumericCell    = errors.New("dataset cell is not a finite number")
	ErrEmptyDataset      = errors.New("dataset contains no data rows")
)

// ============================================================================
// Transform Errors
// ============================================================================

var (
	// ErrNonPositiveValue means a converted value was ≤ 0 and its logarithm
	// is undefined. Physically valid input never triggers this.
	ErrNonPositiveValue = errors.New("value must be positive before log transform")
)

// ============================================================================
// Fit Errors
// ============================================================================

var (
	ErrInsufficientData = errors.New("at least 3 observations required for regression")
	ErrDegenerateX      = errors.New("voltage values are identical, slope undefined")
)

// ============================================================================
// Prediction Errors
// ============================================================================

var (
	ErrInvalidGrid = errors.New("prediction grid requires min < max and step > 0")
)
