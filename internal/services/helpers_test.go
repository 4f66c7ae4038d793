package services

import (
	"context"
	"testing"

	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/repositories/memory"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingValueRepository records which lookups reach the value store
type countingValueRepository struct {
	*memory.ProductAttrValueRepository
	listByStatusCalls  int
	listByAttrIDsCalls int
}

func (r *countingValueRepository) ListByStatus(ctx context.Context, status entities.Status) ([]*entities.ProductAttrValue, error) {
	r.listByStatusCalls++
	return r.ProductAttrValueRepository.ListByStatus(ctx, status)
}

func (r *countingValueRepository) ListByAttrIDs(ctx context.Context, attrIDs []int64) ([]*entities.ProductAttrValue, error) {
	r.listByAttrIDsCalls++
	return r.ProductAttrValueRepository.ListByAttrIDs(ctx, attrIDs)
}

type testEnv struct {
	service   *ProductAttrService
	attrRepo  *memory.ProductAttrRepository
	valueRepo *countingValueRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	attrRepo := memory.NewProductAttrRepository()
	valueRepo := &countingValueRepository{ProductAttrValueRepository: memory.NewProductAttrValueRepository()}
	return &testEnv{
		service:   NewProductAttrService(attrRepo, valueRepo, zap.NewNop()),
		attrRepo:  attrRepo,
		valueRepo: valueRepo,
	}
}

func (e *testEnv) addAttr(t *testing.T, name string, status entities.Status) *entities.ProductAttr {
	t.Helper()
	attr := &entities.ProductAttr{Name: name, Status: status}
	require.NoError(t, e.attrRepo.Create(context.Background(), attr))
	return attr
}

func (e *testEnv) addValue(t *testing.T, attrID int64, name string, status entities.Status) *entities.ProductAttrValue {
	t.Helper()
	value := &entities.ProductAttrValue{AttrID: attrID, Name: name, Status: status}
	require.NoError(t, e.valueRepo.Create(context.Background(), value))
	return value
}

// MockProductAttrRepository is a testify mock of ProductAttrRepository
type MockProductAttrRepository struct {
	mock.Mock
}

func (m *MockProductAttrRepository) GetByID(ctx context.Context, id int64) (*entities.ProductAttr, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProductAttr), args.Error(1)
}

func (m *MockProductAttrRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.ProductAttr, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProductAttr), args.Error(1)
}

func (m *MockProductAttrRepository) GetByName(ctx context.Context, name string) (*entities.ProductAttr, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProductAttr), args.Error(1)
}

func (m *MockProductAttrRepository) ListByNameLike(ctx context.Context, pattern string, offset, limit int) ([]*entities.ProductAttr, error) {
	args := m.Called(ctx, pattern, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProductAttr), args.Error(1)
}

func (m *MockProductAttrRepository) CountByNameLike(ctx context.Context, pattern string) (int64, error) {
	args := m.Called(ctx, pattern)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductAttrRepository) ListByStatus(ctx context.Context, status entities.Status) ([]*entities.ProductAttr, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProductAttr), args.Error(1)
}

func (m *MockProductAttrRepository) Create(ctx context.Context, attr *entities.ProductAttr) error {
	args := m.Called(ctx, attr)
	return args.Error(0)
}

func (m *MockProductAttrRepository) Update(ctx context.Context, update *entities.ProductAttrUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}
