package store

import (
	"context"

	"uniguide/internal/college/models"
	dErrors "uniguide/pkg/domain-errors"
)

// ErrNotFound keeps storage-specific 404s consistent across implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")

// Store is the college slice of the record store.
type Store interface {
	// ListColleges returns at most limit college documents. Filtering,
	// sorting and aggregation all operate over this bounded set.
	ListColleges(ctx context.Context, limit int) ([]models.College, error)
	GetCollege(ctx context.Context, id string) (models.College, error)
}
