package entities

import (
	"fmt"
	"time"
)

// ProductAttr represents a product classification axis
// Example: "Color", "Size"
type ProductAttr struct {
	ID        int64
	Name      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// Enabled reports whether the attribute may be referenced by new products
func (a *ProductAttr) Enabled() bool {
	return a.Status == StatusEnabled
}

// Validate checks if the attribute is valid
func (a *ProductAttr) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("attribute name is required")
	}
	if !a.Status.IsValid() {
		return fmt.Errorf("invalid attribute status: %d", a.Status)
	}
	return nil
}

// ProductAttrUpdate is a partial update of an attribute.
// Nil fields are left untouched.
type ProductAttrUpdate struct {
	ID     int64
	Name   *string
	Status *Status
}

// IsEmpty reports whether the update changes nothing
func (u *ProductAttrUpdate) IsEmpty() bool {
	return u.Name == nil && u.Status == nil
}

// ProductAttrDetail is an attribute with all of its value rows attached.
type ProductAttrDetail struct {
	ID        int64                     `json:"id"`
	Name      string                    `json:"name"`
	Status    Status                    `json:"status"`
	CreatedAt time.Time                 `json:"createTime"`
	Values    []*ProductAttrValueDetail `json:"values"`
}

// NewProductAttrDetail builds a detail view with an empty value list
func NewProductAttrDetail(attr *ProductAttr) *ProductAttrDetail {
	return &ProductAttrDetail{
		ID:        attr.ID,
		Name:      attr.Name,
		Status:    attr.Status,
		CreatedAt: attr.CreatedAt,
		Values:    []*ProductAttrValueDetail{},
	}
}

// ProductAttrSimple is the id/name view used by product editors.
type ProductAttrSimple struct {
	ID     int64                     `json:"id"`
	Name   string                    `json:"name"`
	Values []*ProductAttrValueSimple `json:"values"`
}

// ProductAttrPage is one page of the attribute listing plus the total number of matches.
type ProductAttrPage struct {
	Attrs []*ProductAttrDetail `json:"attrs"`
	Count int64                `json:"count"`
}

// ProductAttrAndValuePair annotates a product variant with readable attribute text
type ProductAttrAndValuePair struct {
	AttrID        int64  `json:"attrId"`
	AttrName      string `json:"attrName"`
	AttrValueID   int64  `json:"attrValueId"`
	AttrValueName string `json:"attrValueName"`
}

// String returns a string representation of the pair
// Format: attr_name:attr_value_name
func (p *ProductAttrAndValuePair) String() string {
	return fmt.Sprintf("%s:%s", p.AttrName, p.AttrValueName)
}
