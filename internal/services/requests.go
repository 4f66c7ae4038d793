package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ProductAttrPageRequest selects one page of attributes by name substring.
// PageNo is zero-based.
type ProductAttrPageRequest struct {
	Name     string `json:"name" validate:"max=50"`
	PageNo   int    `json:"pageNo" validate:"gte=0"`
	PageSize int    `json:"pageSize" validate:"gte=1,lte=100"`
}

// ProductAttrAddRequest creates an attribute
type ProductAttrAddRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// ProductAttrUpdateRequest renames an attribute
type ProductAttrUpdateRequest struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=50"`
}

// ProductAttrValueAddRequest creates a value under an attribute
type ProductAttrValueAddRequest struct {
	AttrID int64  `json:"attrId" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,max=50"`
}

// ProductAttrValueUpdateRequest renames a value
type ProductAttrValueUpdateRequest struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=50"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest checks the validate tags of a request struct.
// The first failing field is reported, wrapped in ErrValidation.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Param() != "" {
			return fmt.Errorf("%w: %s must satisfy %s=%s", ErrValidation, fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %s must satisfy %s", ErrValidation, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
