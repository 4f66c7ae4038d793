package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/repositories"
)

// ProductAttrValueRepository implements repositories.ProductAttrValueRepository in memory
type ProductAttrValueRepository struct {
	mu     sync.RWMutex
	rows   map[int64]*entities.ProductAttrValue
	nextID int64
}

// NewProductAttrValueRepository creates an empty in-memory attribute value repository
func NewProductAttrValueRepository() *ProductAttrValueRepository {
	return &ProductAttrValueRepository{
		rows: make(map[int64]*entities.ProductAttrValue),
	}
}

// GetByID retrieves a value by ID
func (r *ProductAttrValueRepository) GetByID(ctx context.Context, id int64) (*entities.ProductAttrValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.rows[id]
	if !ok || value.Deleted {
		return nil, nil
	}
	return cloneValue(value), nil
}

// GetByIDs retrieves all values whose ID is in ids
func (r *ProductAttrValueRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.ProductAttrValue, error) {
	wanted := toSet(ids)
	return r.filter(func(v *entities.ProductAttrValue) bool {
		_, ok := wanted[v.ID]
		return ok
	}), nil
}

// GetByAttrIDAndName retrieves the value named name under the given attribute
func (r *ProductAttrValueRepository) GetByAttrIDAndName(ctx context.Context, attrID int64, name string) (*entities.ProductAttrValue, error) {
	matches := r.filter(func(v *entities.ProductAttrValue) bool {
		return v.AttrID == attrID && v.Name == name
	})
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// ListByAttrIDs retrieves all values owned by any of the given attributes
func (r *ProductAttrValueRepository) ListByAttrIDs(ctx context.Context, attrIDs []int64) ([]*entities.ProductAttrValue, error) {
	wanted := toSet(attrIDs)
	return r.filter(func(v *entities.ProductAttrValue) bool {
		_, ok := wanted[v.AttrID]
		return ok
	}), nil
}

// ListByStatus retrieves all values with the given status
func (r *ProductAttrValueRepository) ListByStatus(ctx context.Context, status entities.Status) ([]*entities.ProductAttrValue, error) {
	return r.filter(func(v *entities.ProductAttrValue) bool { return v.Status == status }), nil
}

// Create inserts a new value and sets its generated ID
func (r *ProductAttrValueRepository) Create(ctx context.Context, value *entities.ProductAttrValue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !value.Deleted && r.nameTaken(value.AttrID, value.Name, 0) {
		return repositories.ErrDuplicateName
	}

	r.nextID++
	value.ID = r.nextID
	if value.CreatedAt.IsZero() {
		value.CreatedAt = time.Now()
	}
	value.UpdatedAt = value.CreatedAt
	r.rows[value.ID] = cloneValue(value)
	return nil
}

// Update applies a partial update
func (r *ProductAttrValueRepository) Update(ctx context.Context, update *entities.ProductAttrValueUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.rows[update.ID]
	if !ok || value.Deleted || update.IsEmpty() {
		return nil
	}
	if update.Name != nil {
		if r.nameTaken(value.AttrID, *update.Name, update.ID) {
			return repositories.ErrDuplicateName
		}
		value.Name = *update.Name
	}
	if update.Status != nil {
		value.Status = *update.Status
	}
	value.UpdatedAt = time.Now()
	return nil
}

// nameTaken must be called with the lock held
func (r *ProductAttrValueRepository) nameTaken(attrID int64, name string, exceptID int64) bool {
	for _, v := range r.rows {
		if !v.Deleted && v.AttrID == attrID && v.Name == name && v.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *ProductAttrValueRepository) filter(match func(*entities.ProductAttrValue) bool) []*entities.ProductAttrValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.ProductAttrValue{}
	for _, v := range r.rows {
		if !v.Deleted && match(v) {
			result = append(result, cloneValue(v))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func cloneValue(v *entities.ProductAttrValue) *entities.ProductAttrValue {
	c := *v
	return &c
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
