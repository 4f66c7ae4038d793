package repositories

import (
	"context"

	"github.com/asakaida/prodattr/internal/entities"
)

// ProductAttrValueRepository defines the interface for attribute value data access
type ProductAttrValueRepository interface {
	// GetByID retrieves a value by ID
	// Returns nil, nil if not found
	GetByID(ctx context.Context, id int64) (*entities.ProductAttrValue, error)

	// GetByIDs retrieves all values whose ID is in ids
	GetByIDs(ctx context.Context, ids []int64) ([]*entities.ProductAttrValue, error)

	// GetByAttrIDAndName retrieves the value named name under the given attribute
	// Returns nil, nil if not found
	GetByAttrIDAndName(ctx context.Context, attrID int64, name string) (*entities.ProductAttrValue, error)

	// ListByAttrIDs retrieves all values owned by any of the given attributes
	ListByAttrIDs(ctx context.Context, attrIDs []int64) ([]*entities.ProductAttrValue, error)

	// ListByStatus retrieves all values with the given status
	ListByStatus(ctx context.Context, status entities.Status) ([]*entities.ProductAttrValue, error)

	// Create inserts a new value and sets its generated ID
	Create(ctx context.Context, value *entities.ProductAttrValue) error

	// Update applies a partial update
	Update(ctx context.Context, update *entities.ProductAttrValueUpdate) error
}
