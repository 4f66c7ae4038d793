package rest

import (
	"errors"
	"net/http"

	"github.com/asakaida/prodattr/internal/services"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CodeInternal is reported for failures that carry no business code
const CodeInternal = 500

// CommonResult is the response envelope of every admin endpoint
type CommonResult struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, &CommonResult{Code: 0, Message: "", Data: data})
}

// httpStatusOf maps a service error to the HTTP status of its response
func httpStatusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrProductAttrNotExists),
		errors.Is(err, services.ErrProductAttrValueNotExists):
		return http.StatusNotFound
	case errors.Is(err, services.ErrProductAttrExists),
		errors.Is(err, services.ErrProductAttrValueExists),
		errors.Is(err, services.ErrProductAttrStatusEquals),
		errors.Is(err, services.ErrProductAttrValueStatusEquals):
		return http.StatusConflict
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler renders every error returned by a handler as a CommonResult
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		httpStatus int
		result     CommonResult
	)

	var he *echo.HTTPError
	switch {
	case services.IsServiceError(err):
		httpStatus = httpStatusOf(err)
		result = CommonResult{Code: services.CodeOf(err), Message: err.Error()}
	case errors.As(err, &he):
		httpStatus = he.Code
		result = CommonResult{Code: he.Code, Message: http.StatusText(he.Code)}
		if msg, ok := he.Message.(string); ok {
			result.Message = msg
		}
	default:
		httpStatus = http.StatusInternalServerError
		result = CommonResult{Code: CodeInternal, Message: "internal server error"}
		s.logger.Error("Unhandled request error",
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpStatus)
	} else {
		err = c.JSON(httpStatus, &result)
	}
	if err != nil {
		s.logger.Warn("Failed to write error response", zap.Error(err))
	}
}
