package entities

import (
	"fmt"
	"time"
)

// ProductAttrValue represents one permitted value of a ProductAttr
// Example: "Red" under "Color"
type ProductAttrValue struct {
	ID        int64
	AttrID    int64
	Name      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// Enabled reports whether the value may be referenced by new products
func (v *ProductAttrValue) Enabled() bool {
	return v.Status == StatusEnabled
}

// Validate checks if the attribute value is valid
func (v *ProductAttrValue) Validate() error {
	if v.AttrID <= 0 {
		return fmt.Errorf("attribute ID is required")
	}
	if v.Name == "" {
		return fmt.Errorf("attribute value name is required")
	}
	if !v.Status.IsValid() {
		return fmt.Errorf("invalid attribute value status: %d", v.Status)
	}
	return nil
}

// ProductAttrValueUpdate is a partial update of an attribute value.
type ProductAttrValueUpdate struct {
	ID     int64
	Name   *string
	Status *Status
}

// IsEmpty reports whether the update changes nothing
func (u *ProductAttrValueUpdate) IsEmpty() bool {
	return u.Name == nil && u.Status == nil
}

// ProductAttrValueDetail is the full view of a value row.
type ProductAttrValueDetail struct {
	ID        int64     `json:"id"`
	AttrID    int64     `json:"attrId"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createTime"`
}

// NewProductAttrValueDetail converts a value row into its detail view
func NewProductAttrValueDetail(v *ProductAttrValue) *ProductAttrValueDetail {
	return &ProductAttrValueDetail{
		ID:        v.ID,
		AttrID:    v.AttrID,
		Name:      v.Name,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
	}
}

// ProductAttrValueSimple is the id/name view of a value row.
type ProductAttrValueSimple struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GroupValuesByAttrID indexes values by their owning attribute.
// Values keep the order in which they were passed in.
func GroupValuesByAttrID(values []*ProductAttrValue) map[int64][]*ProductAttrValue {
	grouped := make(map[int64][]*ProductAttrValue)
	for _, v := range values {
		grouped[v.AttrID] = append(grouped[v.AttrID], v)
	}
	return grouped
}
