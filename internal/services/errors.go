package services

import (
	"errors"
	"fmt"
)

// ServiceError is an expected, caller-facing failure with a stable business code
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// Business error codes. Not-found and disabled share one code on purpose:
// callers cannot tell a missing row from a disabled one.
var (
	ErrValidation = &ServiceError{Code: 1001001000, Message: "request validation failed"}

	ErrProductAttrNotExists    = &ServiceError{Code: 1003002000, Message: "product attribute does not exist"}
	ErrProductAttrExists       = &ServiceError{Code: 1003002001, Message: "product attribute already exists"}
	ErrProductAttrStatusEquals = &ServiceError{Code: 1003002002, Message: "product attribute already has this status"}

	ErrProductAttrValueNotExists    = &ServiceError{Code: 1003003000, Message: "product attribute value does not exist"}
	ErrProductAttrValueExists       = &ServiceError{Code: 1003003001, Message: "product attribute value already exists"}
	ErrProductAttrValueStatusEquals = &ServiceError{Code: 1003003002, Message: "product attribute value already has this status"}
)

// CodeOf returns the business code carried by err, or 0 if err is not a ServiceError
func CodeOf(err error) int {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// IsServiceError reports whether err is an expected business failure
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}
