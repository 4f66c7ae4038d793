package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/repositories"
	"github.com/asakaida/prodattr/pkg/cache"
	"go.uber.org/zap"
)

// enabledListCacheKey holds the assembled result of GetProductAttrList
const enabledListCacheKey = "product_attr:list:enabled"

// ProductAttrServiceInterface defines the product attribute operations
type ProductAttrServiceInterface interface {
	ValidateProductAttrAndValuePairs(ctx context.Context, valueIDs []int64, validStatus bool) ([]*entities.ProductAttrAndValuePair, error)
	GetProductAttrPage(ctx context.Context, req *ProductAttrPageRequest) (*entities.ProductAttrPage, error)
	GetProductAttrList(ctx context.Context) ([]*entities.ProductAttrSimple, error)
	AddProductAttr(ctx context.Context, adminID int64, req *ProductAttrAddRequest) (*entities.ProductAttr, error)
	UpdateProductAttr(ctx context.Context, adminID int64, req *ProductAttrUpdateRequest) error
	UpdateProductAttrStatus(ctx context.Context, adminID int64, id int64, status entities.Status) error
	AddProductAttrValue(ctx context.Context, adminID int64, req *ProductAttrValueAddRequest) (*entities.ProductAttrValue, error)
	UpdateProductAttrValue(ctx context.Context, adminID int64, req *ProductAttrValueUpdateRequest) error
	UpdateProductAttrValueStatus(ctx context.Context, adminID int64, id int64, status entities.Status) error
}

// ProductAttrService manages product attributes and their values
type ProductAttrService struct {
	attrRepo  repositories.ProductAttrRepository
	valueRepo repositories.ProductAttrValueRepository
	logger    *zap.Logger

	listCache cache.Cache[[]*entities.ProductAttrSimple]
	cacheTTL  time.Duration

	// listGen is bumped by every invalidation. A list read under an older
	// generation is not written back to the cache.
	listMu  sync.Mutex
	listGen uint64
}

// NewProductAttrService creates a new ProductAttrService
func NewProductAttrService(
	attrRepo repositories.ProductAttrRepository,
	valueRepo repositories.ProductAttrValueRepository,
	logger *zap.Logger,
) *ProductAttrService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductAttrService{
		attrRepo:  attrRepo,
		valueRepo: valueRepo,
		logger:    logger,
	}
}

// SetCache enables caching of the enabled attribute list.
// Every attribute or value mutation invalidates the cached entry.
func (s *ProductAttrService) SetCache(c cache.Cache[[]*entities.ProductAttrSimple], ttl time.Duration) {
	s.listCache = c
	s.cacheTTL = ttl
}

// ValidateProductAttrAndValuePairs checks that every value ID exists and, when
// validStatus is set, that both the value and its attribute are enabled.
// Disabled rows are reported exactly like missing ones.
func (s *ProductAttrService) ValidateProductAttrAndValuePairs(ctx context.Context, valueIDs []int64, validStatus bool) ([]*entities.ProductAttrAndValuePair, error) {
	ids := uniqueIDs(valueIDs)
	if len(ids) == 0 {
		return []*entities.ProductAttrAndValuePair{}, nil
	}

	// values first
	values, err := s.valueRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute values: %w", err)
	}
	if len(values) < len(ids) {
		return nil, ErrProductAttrValueNotExists
	}
	if validStatus {
		for _, v := range values {
			if !v.Enabled() {
				return nil, ErrProductAttrValueNotExists
			}
		}
	}

	// then their attributes
	attrIDs := make([]int64, 0, len(values))
	for _, v := range values {
		attrIDs = append(attrIDs, v.AttrID)
	}
	attrIDs = uniqueIDs(attrIDs)

	attrs, err := s.attrRepo.GetByIDs(ctx, attrIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get attributes: %w", err)
	}
	if len(attrs) < len(attrIDs) {
		return nil, ErrProductAttrNotExists
	}
	if validStatus {
		for _, a := range attrs {
			if !a.Enabled() {
				return nil, ErrProductAttrNotExists
			}
		}
	}

	attrByID := make(map[int64]*entities.ProductAttr, len(attrs))
	for _, a := range attrs {
		attrByID[a.ID] = a
	}

	pairs := make([]*entities.ProductAttrAndValuePair, 0, len(values))
	for _, v := range values {
		pairs = append(pairs, &entities.ProductAttrAndValuePair{
			AttrID:        v.AttrID,
			AttrName:      attrByID[v.AttrID].Name,
			AttrValueID:   v.ID,
			AttrValueName: v.Name,
		})
	}

	s.logger.Debug("Resolved attribute value pairs",
		zap.Bool("valid_status", validStatus),
		zap.Stringers("pairs", pairs))
	return pairs, nil
}

// GetProductAttrPage returns one page of attributes whose name contains req.Name,
// each with all of its values, and the total number of matching attributes.
// Paging parameters are used as given.
func (s *ProductAttrService) GetProductAttrPage(ctx context.Context, req *ProductAttrPageRequest) (*entities.ProductAttrPage, error) {
	offset := req.PageNo * req.PageSize

	attrs, err := s.attrRepo.ListByNameLike(ctx, req.Name, offset, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list attributes: %w", err)
	}

	count, err := s.attrRepo.CountByNameLike(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to count attributes: %w", err)
	}

	page := &entities.ProductAttrPage{
		Attrs: make([]*entities.ProductAttrDetail, 0, len(attrs)),
		Count: count,
	}
	if len(attrs) == 0 {
		return page, nil
	}

	attrIDs := make([]int64, 0, len(attrs))
	for _, a := range attrs {
		attrIDs = append(attrIDs, a.ID)
	}
	values, err := s.valueRepo.ListByAttrIDs(ctx, attrIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list attribute values: %w", err)
	}
	valuesByAttr := entities.GroupValuesByAttrID(values)

	for _, a := range attrs {
		detail := entities.NewProductAttrDetail(a)
		for _, v := range valuesByAttr[a.ID] {
			detail.Values = append(detail.Values, entities.NewProductAttrValueDetail(v))
		}
		page.Attrs = append(page.Attrs, detail)
	}
	return page, nil
}

// GetProductAttrList returns every enabled attribute with its enabled values.
// An enabled attribute whose values are all disabled is returned with no values.
func (s *ProductAttrService) GetProductAttrList(ctx context.Context) ([]*entities.ProductAttrSimple, error) {
	if s.listCache != nil {
		if cached, ok := s.listCache.Get(ctx, enabledListCacheKey); ok {
			return cached, nil
		}
	}

	gen := s.listGeneration()

	attrs, err := s.attrRepo.ListByStatus(ctx, entities.StatusEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled attributes: %w", err)
	}
	if len(attrs) == 0 {
		return []*entities.ProductAttrSimple{}, nil
	}

	values, err := s.valueRepo.ListByStatus(ctx, entities.StatusEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled attribute values: %w", err)
	}
	valuesByAttr := entities.GroupValuesByAttrID(values)

	result := make([]*entities.ProductAttrSimple, 0, len(attrs))
	for _, a := range attrs {
		simple := &entities.ProductAttrSimple{
			ID:     a.ID,
			Name:   a.Name,
			Values: make([]*entities.ProductAttrValueSimple, 0, len(valuesByAttr[a.ID])),
		}
		for _, v := range valuesByAttr[a.ID] {
			simple.Values = append(simple.Values, &entities.ProductAttrValueSimple{ID: v.ID, Name: v.Name})
		}
		result = append(result, simple)
	}

	s.storeList(ctx, gen, result)
	return result, nil
}

// AddProductAttr creates an enabled attribute with a name not used by any other attribute
func (s *ProductAttrService) AddProductAttr(ctx context.Context, adminID int64, req *ProductAttrAddRequest) (*entities.ProductAttr, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.attrRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check attribute name: %w", err)
	}
	if existing != nil {
		return nil, ErrProductAttrExists
	}

	attr := &entities.ProductAttr{
		Name:      req.Name,
		Status:    entities.StatusEnabled,
		CreatedAt: time.Now(),
		Deleted:   false,
	}
	if err := s.attrRepo.Create(ctx, attr); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return nil, ErrProductAttrExists
		}
		return nil, fmt.Errorf("failed to create attribute: %w", err)
	}

	s.invalidateList(ctx)
	s.logger.Info("Product attribute created",
		zap.Int64("admin_id", adminID),
		zap.Int64("attr_id", attr.ID),
		zap.String("name", attr.Name))

	return attr, nil
}

// UpdateProductAttr renames an attribute
func (s *ProductAttrService) UpdateProductAttr(ctx context.Context, adminID int64, req *ProductAttrUpdateRequest) error {
	if err := ValidateRequest(req); err != nil {
		return err
	}

	attr, err := s.attrRepo.GetByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to get attribute: %w", err)
	}
	if attr == nil {
		return ErrProductAttrNotExists
	}

	existing, err := s.attrRepo.GetByName(ctx, req.Name)
	if err != nil {
		return fmt.Errorf("failed to check attribute name: %w", err)
	}
	if existing != nil && existing.ID != req.ID {
		return ErrProductAttrExists
	}

	name := req.Name
	if err := s.attrRepo.Update(ctx, &entities.ProductAttrUpdate{ID: req.ID, Name: &name}); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return ErrProductAttrExists
		}
		return fmt.Errorf("failed to update attribute: %w", err)
	}

	s.invalidateList(ctx)
	s.logger.Info("Product attribute updated",
		zap.Int64("admin_id", adminID),
		zap.Int64("attr_id", req.ID),
		zap.String("name", req.Name))

	return nil
}

// UpdateProductAttrStatus enables or disables an attribute.
// Setting the status it already has is an error.
func (s *ProductAttrService) UpdateProductAttrStatus(ctx context.Context, adminID int64, id int64, status entities.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: status must be enabled (1) or disabled (2)", ErrValidation)
	}

	attr, err := s.attrRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get attribute: %w", err)
	}
	if attr == nil {
		return ErrProductAttrNotExists
	}
	if attr.Status == status {
		return ErrProductAttrStatusEquals
	}

	if err := s.attrRepo.Update(ctx, &entities.ProductAttrUpdate{ID: id, Status: &status}); err != nil {
		return fmt.Errorf("failed to update attribute status: %w", err)
	}

	s.invalidateList(ctx)
	s.logger.Info("Product attribute status changed",
		zap.Int64("admin_id", adminID),
		zap.Int64("attr_id", id),
		zap.Stringer("status", status))

	return nil
}

// InvalidateCache drops the cached enabled list.
// Used when another instance reports a change.
func (s *ProductAttrService) InvalidateCache(ctx context.Context) {
	s.invalidateList(ctx)
}

func (s *ProductAttrService) listGeneration() uint64 {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	return s.listGen
}

// storeList caches list unless an invalidation happened since gen was read.
func (s *ProductAttrService) storeList(ctx context.Context, gen uint64, list []*entities.ProductAttrSimple) {
	if s.listCache == nil {
		return
	}

	s.listMu.Lock()
	defer s.listMu.Unlock()
	if s.listGen != gen {
		s.logger.Debug("Skipping stale enabled attribute list")
		return
	}
	if err := s.listCache.Set(ctx, enabledListCacheKey, list, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache enabled attribute list", zap.Error(err))
	}
}

// invalidateList drops the cached enabled list. Errors are logged only.
func (s *ProductAttrService) invalidateList(ctx context.Context) {
	if s.listCache == nil {
		return
	}

	s.listMu.Lock()
	s.listGen++
	s.listMu.Unlock()

	if err := s.listCache.Delete(ctx, enabledListCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate enabled attribute list", zap.Error(err))
	}
}

// uniqueIDs removes duplicates, keeping first occurrences in order
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
