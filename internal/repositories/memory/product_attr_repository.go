// Package memory provides in-process repositories with the same contract as
// the PostgreSQL ones. Rows are returned in ID order.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/repositories"
)

// ProductAttrRepository implements repositories.ProductAttrRepository in memory
type ProductAttrRepository struct {
	mu     sync.RWMutex
	rows   map[int64]*entities.ProductAttr
	nextID int64
}

// NewProductAttrRepository creates an empty in-memory attribute repository
func NewProductAttrRepository() *ProductAttrRepository {
	return &ProductAttrRepository{
		rows: make(map[int64]*entities.ProductAttr),
	}
}

// GetByID retrieves an attribute by ID
func (r *ProductAttrRepository) GetByID(ctx context.Context, id int64) (*entities.ProductAttr, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attr, ok := r.rows[id]
	if !ok || attr.Deleted {
		return nil, nil
	}
	return cloneAttr(attr), nil
}

// GetByIDs retrieves all attributes whose ID is in ids
func (r *ProductAttrRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.ProductAttr, error) {
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return r.filter(func(a *entities.ProductAttr) bool {
		_, ok := wanted[a.ID]
		return ok
	}), nil
}

// GetByName retrieves the attribute with exactly the given name
func (r *ProductAttrRepository) GetByName(ctx context.Context, name string) (*entities.ProductAttr, error) {
	matches := r.filter(func(a *entities.ProductAttr) bool { return a.Name == name })
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// ListByNameLike retrieves attributes whose name contains pattern
func (r *ProductAttrRepository) ListByNameLike(ctx context.Context, pattern string, offset, limit int) ([]*entities.ProductAttr, error) {
	matches := r.filter(func(a *entities.ProductAttr) bool { return strings.Contains(a.Name, pattern) })
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matches) || limit <= 0 {
		return []*entities.ProductAttr{}, nil
	}
	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[offset:end], nil
}

// CountByNameLike counts attributes whose name contains pattern
func (r *ProductAttrRepository) CountByNameLike(ctx context.Context, pattern string) (int64, error) {
	matches := r.filter(func(a *entities.ProductAttr) bool { return strings.Contains(a.Name, pattern) })
	return int64(len(matches)), nil
}

// ListByStatus retrieves all attributes with the given status
func (r *ProductAttrRepository) ListByStatus(ctx context.Context, status entities.Status) ([]*entities.ProductAttr, error) {
	return r.filter(func(a *entities.ProductAttr) bool { return a.Status == status }), nil
}

// Create inserts a new attribute and sets its generated ID
func (r *ProductAttrRepository) Create(ctx context.Context, attr *entities.ProductAttr) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !attr.Deleted && r.nameTaken(attr.Name, 0) {
		return repositories.ErrDuplicateName
	}

	r.nextID++
	attr.ID = r.nextID
	if attr.CreatedAt.IsZero() {
		attr.CreatedAt = time.Now()
	}
	attr.UpdatedAt = attr.CreatedAt
	r.rows[attr.ID] = cloneAttr(attr)
	return nil
}

// Update applies a partial update
func (r *ProductAttrRepository) Update(ctx context.Context, update *entities.ProductAttrUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	attr, ok := r.rows[update.ID]
	if !ok || attr.Deleted || update.IsEmpty() {
		return nil
	}
	if update.Name != nil {
		if r.nameTaken(*update.Name, update.ID) {
			return repositories.ErrDuplicateName
		}
		attr.Name = *update.Name
	}
	if update.Status != nil {
		attr.Status = *update.Status
	}
	attr.UpdatedAt = time.Now()
	return nil
}

// nameTaken must be called with the lock held
func (r *ProductAttrRepository) nameTaken(name string, exceptID int64) bool {
	for _, a := range r.rows {
		if !a.Deleted && a.Name == name && a.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *ProductAttrRepository) filter(match func(*entities.ProductAttr) bool) []*entities.ProductAttr {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.ProductAttr{}
	for _, a := range r.rows {
		if !a.Deleted && match(a) {
			result = append(result, cloneAttr(a))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func cloneAttr(a *entities.ProductAttr) *entities.ProductAttr {
	c := *a
	return &c
}
