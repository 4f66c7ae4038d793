package prodattrv1

import "time"

// Status values carried on the wire
const (
	StatusEnabled  int32 = 1
	StatusDisabled int32 = 2
)

// ProductAttr is a stored attribute row
type ProductAttr struct {
	Id         int64     `json:"id"`
	Name       string    `json:"name"`
	Status     int32     `json:"status"`
	CreateTime time.Time `json:"createTime"`
}

// ProductAttrValue is a stored value row
type ProductAttrValue struct {
	Id         int64     `json:"id"`
	AttrId     int64     `json:"attrId"`
	Name       string    `json:"name"`
	Status     int32     `json:"status"`
	CreateTime time.Time `json:"createTime"`
}

// ProductAttrDetail is an attribute with all of its values
type ProductAttrDetail struct {
	Id         int64               `json:"id"`
	Name       string              `json:"name"`
	Status     int32               `json:"status"`
	CreateTime time.Time           `json:"createTime"`
	Values     []*ProductAttrValue `json:"values"`
}

// ProductAttrValueSimple is a value reduced to id and name
type ProductAttrValueSimple struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductAttrSimple is an enabled attribute with its enabled values
type ProductAttrSimple struct {
	Id     int64                     `json:"id"`
	Name   string                    `json:"name"`
	Values []*ProductAttrValueSimple `json:"values"`
}

// ProductAttrAndValuePair joins a value with its attribute
type ProductAttrAndValuePair struct {
	AttrId        int64  `json:"attrId"`
	AttrName      string `json:"attrName"`
	AttrValueId   int64  `json:"attrValueId"`
	AttrValueName string `json:"attrValueName"`
}

type ValidateProductAttrAndValuePairsRequest struct {
	AttrValueIds []int64 `json:"attrValueIds"`
	ValidStatus  bool    `json:"validStatus"`
}

type ValidateProductAttrAndValuePairsResponse struct {
	Pairs []*ProductAttrAndValuePair `json:"pairs"`
}

type GetProductAttrPageRequest struct {
	Name     string `json:"name"`
	PageNo   int32  `json:"pageNo"`
	PageSize int32  `json:"pageSize"`
}

type GetProductAttrPageResponse struct {
	List  []*ProductAttrDetail `json:"list"`
	Total int64                `json:"total"`
}

type GetProductAttrListRequest struct{}

type GetProductAttrListResponse struct {
	List []*ProductAttrSimple `json:"list"`
}

type AddProductAttrRequest struct {
	Name string `json:"name"`
}

type AddProductAttrResponse struct {
	Attr *ProductAttr `json:"attr"`
}

type UpdateProductAttrRequest struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type UpdateProductAttrStatusRequest struct {
	Id     int64 `json:"id"`
	Status int32 `json:"status"`
}

type AddProductAttrValueRequest struct {
	AttrId int64  `json:"attrId"`
	Name   string `json:"name"`
}

type AddProductAttrValueResponse struct {
	Value *ProductAttrValue `json:"value"`
}

type UpdateProductAttrValueRequest struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type UpdateProductAttrValueStatusRequest struct {
	Id     int64 `json:"id"`
	Status int32 `json:"status"`
}

// UpdateResponse is returned by every update RPC
type UpdateResponse struct {
	Success bool `json:"success"`
}
