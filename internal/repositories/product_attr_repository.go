package repositories

import (
	"context"

	"github.com/asakaida/prodattr/internal/entities"
)

// ProductAttrRepository defines the interface for attribute data access.
// Every lookup ignores logically deleted rows.
type ProductAttrRepository interface {
	// GetByID retrieves an attribute by ID
	// Returns nil, nil if not found
	GetByID(ctx context.Context, id int64) (*entities.ProductAttr, error)

	// GetByIDs retrieves all attributes whose ID is in ids
	GetByIDs(ctx context.Context, ids []int64) ([]*entities.ProductAttr, error)

	// GetByName retrieves the attribute with exactly the given name
	// Returns nil, nil if not found
	GetByName(ctx context.Context, name string) (*entities.ProductAttr, error)

	// ListByNameLike retrieves attributes whose name contains pattern
	// An empty pattern matches every attribute
	ListByNameLike(ctx context.Context, pattern string, offset, limit int) ([]*entities.ProductAttr, error)

	// CountByNameLike counts attributes whose name contains pattern
	CountByNameLike(ctx context.Context, pattern string) (int64, error)

	// ListByStatus retrieves all attributes with the given status
	ListByStatus(ctx context.Context, status entities.Status) ([]*entities.ProductAttr, error)

	// Create inserts a new attribute and sets its generated ID
	Create(ctx context.Context, attr *entities.ProductAttr) error

	// Update applies a partial update
	Update(ctx context.Context, update *entities.ProductAttrUpdate) error
}
