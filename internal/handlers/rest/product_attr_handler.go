package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/services"
	"github.com/labstack/echo/v4"
)

// ProductAttrHandler serves the attribute admin endpoints
type ProductAttrHandler struct {
	service services.ProductAttrServiceInterface
}

// NewProductAttrHandler creates a new ProductAttrHandler
func NewProductAttrHandler(service services.ProductAttrServiceInterface) *ProductAttrHandler {
	return &ProductAttrHandler{service: service}
}

// RegisterRoutes registers the attribute endpoints on g
func (h *ProductAttrHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/attrs/page", h.GetProductAttrPage)
	g.GET("/attrs", h.GetProductAttrList)
	g.POST("/attrs", h.AddProductAttr)
	g.PUT("/attrs/:id", h.UpdateProductAttr)
	g.PUT("/attrs/:id/status", h.UpdateProductAttrStatus)

	g.POST("/attr-values", h.AddProductAttrValue)
	g.PUT("/attr-values/:id", h.UpdateProductAttrValue)
	g.PUT("/attr-values/:id/status", h.UpdateProductAttrValueStatus)
	g.POST("/attr-values/validate", h.ValidateProductAttrAndValuePairs)
}

type nameBody struct {
	Name string `json:"name"`
}

type statusBody struct {
	Status int `json:"status"`
}

type attrValueAddBody struct {
	AttrID int64  `json:"attrId"`
	Name   string `json:"name"`
}

type validateBody struct {
	AttrValueIDs []int64 `json:"attrValueIds"`
	ValidStatus  bool    `json:"validStatus"`
}

// GetProductAttrPage handles GET /attrs/page
func (h *ProductAttrHandler) GetProductAttrPage(c echo.Context) error {
	req := &services.ProductAttrPageRequest{PageNo: 0, PageSize: 10}
	if err := echo.QueryParamsBinder(c).
		String("name", &req.Name).
		Int("pageNo", &req.PageNo).
		Int("pageSize", &req.PageSize).
		BindError(); err != nil {
		return fmt.Errorf("%w: %v", services.ErrValidation, err)
	}
	if err := services.ValidateRequest(req); err != nil {
		return err
	}

	page, err := h.service.GetProductAttrPage(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return success(c, map[string]interface{}{
		"list":  page.Attrs,
		"total": page.Count,
	})
}

// GetProductAttrList handles GET /attrs
func (h *ProductAttrHandler) GetProductAttrList(c echo.Context) error {
	attrs, err := h.service.GetProductAttrList(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, attrs)
}

// AddProductAttr handles POST /attrs
func (h *ProductAttrHandler) AddProductAttr(c echo.Context) error {
	adminID, err := adminIDFromHeader(c)
	if err != nil {
		return err
	}
	var body nameBody
	if err := bindBody(c, &body); err != nil {
		return err
	}

	attr, err := h.service.AddProductAttr(c.Request().Context(), adminID, &services.ProductAttrAddRequest{Name: body.Name})
	if err != nil {
		return err
	}
	return success(c, entities.NewProductAttrDetail(attr))
}

// UpdateProductAttr handles PUT /attrs/:id
func (h *ProductAttrHandler) UpdateProductAttr(c echo.Context) error {
	adminID, err := adminIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body nameBody
	if err := bindBody(c, &body); err != nil {
		return err
	}

	if err := h.service.UpdateProductAttr(c.Request().Context(), adminID, &services.ProductAttrUpdateRequest{ID: id, Name: body.Name}); err != nil {
		return err
	}
	return success(c, true)
}

// UpdateProductAttrStatus handles PUT /attrs/:id/status
func (h *ProductAttrHandler) UpdateProductAttrStatus(c echo.Context) error {
	adminID, err := adminIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body statusBody
	if err := bindBody(c, &body); err != nil {
		return err
	}

	if err := h.service.UpdateProductAttrStatus(c.Request().Context(), adminID, id, entities.Status(body.Status)); err != nil {
		return err
	}
	return success(c, true)
}

// AddProductAttrValue handles POST /attr-values
func (h *ProductAttrHandler) AddProductAttrValue(c echo.Context) error {
	adminID, err := adminIDFromHeader(c)
	if err != nil {
		return err
	}
	var body attrValueAddBody
	if err := bindBody(c, &body); err != nil {
		return err
	}

	value, err := h.service.AddProductAttrValue(c.Request().Context(), adminID, &services.ProductAttrValueAddRequest{AttrID: body.AttrID, Name: body.Name})
	if err != nil {
		return err
	}
	return success(c, entities.NewProductAttrValueDetail(value))
}

// UpdateProductAttrValue handles PUT /attr-values/:id
func (h *ProductAttrHandler) UpdateProductAttrValue(c echo.Context) error {
	adminID, err := adminIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body nameBody
	if err := bindBody(c, &body); err != nil {
		return err
	}

	if err := h.service.UpdateProductAttrValue(c.Request().Context(), adminID, &services.ProductAttrValueUpdateRequest{ID: id, Name: body.Name}); err != nil {
		return err
	}
	return success(c, true)
}

// UpdateProductAttrValueStatus handles PUT /attr-values/:id/status
func (h *ProductAttrHandler) UpdateProductAttrValueStatus(c echo.Context) error {
	adminID, err := adminIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body statusBody
	if err := bindBody(c, &body); err != nil {
		return err
	}

	if err := h.service.UpdateProductAttrValueStatus(c.Request().Context(), adminID, id, entities.Status(body.Status)); err != nil {
		return err
	}
	return success(c, true)
}

// ValidateProductAttrAndValuePairs handles POST /attr-values/validate
func (h *ProductAttrHandler) ValidateProductAttrAndValuePairs(c echo.Context) error {
	var body validateBody
	if err := bindBody(c, &body); err != nil {
		return err
	}

	pairs, err := h.service.ValidateProductAttrAndValuePairs(c.Request().Context(), body.AttrValueIDs, body.ValidStatus)
	if err != nil {
		return err
	}
	return success(c, pairs)
}

func adminIDFromHeader(c echo.Context) (int64, error) {
	raw := c.Request().Header.Get(AdminIDHeader)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "X-Admin-Id header is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid X-Admin-Id header")
	}
	return id, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer", services.ErrValidation)
	}
	return id, nil
}

func bindBody(c echo.Context, v interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		return fmt.Errorf("%w: malformed request body", services.ErrValidation)
	}
	return nil
}
