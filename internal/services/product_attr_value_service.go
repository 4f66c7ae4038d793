package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/repositories"
	"go.uber.org/zap"
)

// AddProductAttrValue creates an enabled value under an enabled attribute.
// Value names are unique within their attribute.
func (s *ProductAttrService) AddProductAttrValue(ctx context.Context, adminID int64, req *ProductAttrValueAddRequest) (*entities.ProductAttrValue, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	attr, err := s.attrRepo.GetByID(ctx, req.AttrID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute: %w", err)
	}
	if attr == nil || !attr.Enabled() {
		return nil, ErrProductAttrNotExists
	}

	existing, err := s.valueRepo.GetByAttrIDAndName(ctx, req.AttrID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check attribute value name: %w", err)
	}
	if existing != nil {
		return nil, ErrProductAttrValueExists
	}

	value := &entities.ProductAttrValue{
		AttrID:    req.AttrID,
		Name:      req.Name,
		Status:    entities.StatusEnabled,
		CreatedAt: time.Now(),
	}
	if err := s.valueRepo.Create(ctx, value); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return nil, ErrProductAttrValueExists
		}
		return nil, fmt.Errorf("failed to create attribute value: %w", err)
	}

	s.invalidateList(ctx)
	s.logger.Info("Product attribute value created",
		zap.Int64("admin_id", adminID),
		zap.Int64("attr_id", value.AttrID),
		zap.Int64("attr_value_id", value.ID),
		zap.String("name", value.Name))

	return value, nil
}

// UpdateProductAttrValue renames a value. The owning attribute cannot change.
func (s *ProductAttrService) UpdateProductAttrValue(ctx context.Context, adminID int64, req *ProductAttrValueUpdateRequest) error {
	if err := ValidateRequest(req); err != nil {
		return err
	}

	value, err := s.valueRepo.GetByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to get attribute value: %w", err)
	}
	if value == nil {
		return ErrProductAttrValueNotExists
	}

	existing, err := s.valueRepo.GetByAttrIDAndName(ctx, value.AttrID, req.Name)
	if err != nil {
		return fmt.Errorf("failed to check attribute value name: %w", err)
	}
	if existing != nil && existing.ID != req.ID {
		return ErrProductAttrValueExists
	}

	name := req.Name
	if err := s.valueRepo.Update(ctx, &entities.ProductAttrValueUpdate{ID: req.ID, Name: &name}); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return ErrProductAttrValueExists
		}
		return fmt.Errorf("failed to update attribute value: %w", err)
	}

	s.invalidateList(ctx)
	s.logger.Info("Product attribute value updated",
		zap.Int64("admin_id", adminID),
		zap.Int64("attr_value_id", req.ID),
		zap.String("name", req.Name))

	return nil
}

// UpdateProductAttrValueStatus enables or disables a value.
// Setting the status it already has is an error.
func (s *ProductAttrService) UpdateProductAttrValueStatus(ctx context.Context, adminID int64, id int64, status entities.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: status must be enabled (1) or disabled (2)", ErrValidation)
	}

	value, err := s.valueRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get attribute value: %w", err)
	}
	if value == nil {
		return ErrProductAttrValueNotExists
	}
	if value.Status == status {
		return ErrProductAttrValueStatusEquals
	}

	if err := s.valueRepo.Update(ctx, &entities.ProductAttrValueUpdate{ID: id, Status: &status}); err != nil {
		return fmt.Errorf("failed to update attribute value status: %w", err)
	}

	s.invalidateList(ctx)
	s.logger.Info("Product attribute value status changed",
		zap.Int64("admin_id", adminID),
		zap.Int64("attr_value_id", id),
		zap.Stringer("status", status))

	return nil
}
