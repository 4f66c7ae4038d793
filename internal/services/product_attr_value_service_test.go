package services

import (
	"context"
	"testing"

	"github.com/asakaida/prodattr/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductAttrService_AddProductAttrValue(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	color := env.addAttr(t, "Color", entities.StatusEnabled)
	size := env.addAttr(t, "Size", entities.StatusDisabled)

	t.Run("created enabled under its attribute", func(t *testing.T) {
		value, err := env.service.AddProductAttrValue(ctx, 7, &ProductAttrValueAddRequest{AttrID: color.ID, Name: "Red"})
		require.NoError(t, err)
		assert.NotZero(t, value.ID)
		assert.Equal(t, color.ID, value.AttrID)
		assert.Equal(t, entities.StatusEnabled, value.Status)

		stored, err := env.valueRepo.GetByID(ctx, value.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Red", stored.Name)
	})

	t.Run("same name under the same attribute", func(t *testing.T) {
		_, err := env.service.AddProductAttrValue(ctx, 7, &ProductAttrValueAddRequest{AttrID: color.ID, Name: "Red"})
		assert.ErrorIs(t, err, ErrProductAttrValueExists)
	})

	t.Run("same name under another attribute is allowed", func(t *testing.T) {
		material := env.addAttr(t, "Material", entities.StatusEnabled)
		_, err := env.service.AddProductAttrValue(ctx, 7, &ProductAttrValueAddRequest{AttrID: material.ID, Name: "Red"})
		assert.NoError(t, err)
	})

	t.Run("unknown attribute", func(t *testing.T) {
		_, err := env.service.AddProductAttrValue(ctx, 7, &ProductAttrValueAddRequest{AttrID: 99, Name: "Red"})
		assert.ErrorIs(t, err, ErrProductAttrNotExists)
	})

	t.Run("disabled attribute", func(t *testing.T) {
		_, err := env.service.AddProductAttrValue(ctx, 7, &ProductAttrValueAddRequest{AttrID: size.ID, Name: "M"})
		assert.ErrorIs(t, err, ErrProductAttrNotExists)
	})

	t.Run("name too long", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'x'
		}
		_, err := env.service.AddProductAttrValue(ctx, 7, &ProductAttrValueAddRequest{AttrID: color.ID, Name: string(long)})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "Name must satisfy max=50")
	})
}

func TestProductAttrService_UpdateProductAttrValue(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	color := env.addAttr(t, "Color", entities.StatusEnabled)
	red := env.addValue(t, color.ID, "Red", entities.StatusEnabled)
	env.addValue(t, color.ID, "Blue", entities.StatusEnabled)

	t.Run("unknown value", func(t *testing.T) {
		err := env.service.UpdateProductAttrValue(ctx, 1, &ProductAttrValueUpdateRequest{ID: 99, Name: "Green"})
		assert.ErrorIs(t, err, ErrProductAttrValueNotExists)
	})

	t.Run("name used by a sibling value", func(t *testing.T) {
		err := env.service.UpdateProductAttrValue(ctx, 1, &ProductAttrValueUpdateRequest{ID: red.ID, Name: "Blue"})
		assert.ErrorIs(t, err, ErrProductAttrValueExists)
	})

	t.Run("rename keeps the owning attribute", func(t *testing.T) {
		require.NoError(t, env.service.UpdateProductAttrValue(ctx, 1, &ProductAttrValueUpdateRequest{ID: red.ID, Name: "Crimson"}))

		stored, err := env.valueRepo.GetByID(ctx, red.ID)
		require.NoError(t, err)
		assert.Equal(t, "Crimson", stored.Name)
		assert.Equal(t, color.ID, stored.AttrID)
	})
}

func TestProductAttrService_UpdateProductAttrValueStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	color := env.addAttr(t, "Color", entities.StatusEnabled)
	red := env.addValue(t, color.ID, "Red", entities.StatusEnabled)

	t.Run("invalid status", func(t *testing.T) {
		err := env.service.UpdateProductAttrValueStatus(ctx, 1, red.ID, 0)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown value", func(t *testing.T) {
		err := env.service.UpdateProductAttrValueStatus(ctx, 1, 99, entities.StatusDisabled)
		assert.ErrorIs(t, err, ErrProductAttrValueNotExists)
	})

	t.Run("same status", func(t *testing.T) {
		err := env.service.UpdateProductAttrValueStatus(ctx, 1, red.ID, entities.StatusEnabled)
		assert.ErrorIs(t, err, ErrProductAttrValueStatusEquals)
	})

	t.Run("disabled value drops out of the enabled list and strict validation", func(t *testing.T) {
		require.NoError(t, env.service.UpdateProductAttrValueStatus(ctx, 1, red.ID, entities.StatusDisabled))

		attrs, err := env.service.GetProductAttrList(ctx)
		require.NoError(t, err)
		require.Len(t, attrs, 1)
		assert.Empty(t, attrs[0].Values)

		_, err = env.service.ValidateProductAttrAndValuePairs(ctx, []int64{red.ID}, true)
		assert.ErrorIs(t, err, ErrProductAttrValueNotExists)
	})
}

func TestServiceErrors(t *testing.T) {
	wrapped := ValidateRequest(&ProductAttrAddRequest{})

	assert.True(t, IsServiceError(wrapped))
	assert.Equal(t, 1001001000, CodeOf(wrapped))
	assert.Equal(t, 1003002000, CodeOf(ErrProductAttrNotExists))
	assert.Equal(t, 1003003002, CodeOf(ErrProductAttrValueStatusEquals))
	assert.Equal(t, 0, CodeOf(assert.AnError))
	assert.Equal(t, "product attribute already exists (code 1003002001)", ErrProductAttrExists.Error())
}
