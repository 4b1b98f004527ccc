package ports

import (
	"context"

	"scattering-report/internal/core/domain"
)

// DatasetReader loads the fixed-schema cross-section table from disk.
type DatasetReader interface {
	Read(ctx context.Context, path string) (domain.RawTable, error)
}
