package handlers

import (
	"context"

	pb "github.com/asakaida/prodattr/api/prodattr/v1"
	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/services"
)

// ProductAttrHandler handles ProductAttrService gRPC requests
type ProductAttrHandler struct {
	pb.UnimplementedProductAttrServiceServer
	service services.ProductAttrServiceInterface
}

// NewProductAttrHandler creates a new ProductAttrHandler
func NewProductAttrHandler(service services.ProductAttrServiceInterface) *ProductAttrHandler {
	return &ProductAttrHandler{
		service: service,
	}
}

// ValidateProductAttrAndValuePairs handles the ValidateProductAttrAndValuePairs RPC
func (h *ProductAttrHandler) ValidateProductAttrAndValuePairs(ctx context.Context, req *pb.ValidateProductAttrAndValuePairsRequest) (*pb.ValidateProductAttrAndValuePairsResponse, error) {
	pairs, err := h.service.ValidateProductAttrAndValuePairs(ctx, req.AttrValueIds, req.ValidStatus)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	resp := &pb.ValidateProductAttrAndValuePairsResponse{
		Pairs: make([]*pb.ProductAttrAndValuePair, 0, len(pairs)),
	}
	for _, p := range pairs {
		resp.Pairs = append(resp.Pairs, pairToProto(p))
	}
	return resp, nil
}

// GetProductAttrPage handles the GetProductAttrPage RPC
func (h *ProductAttrHandler) GetProductAttrPage(ctx context.Context, req *pb.GetProductAttrPageRequest) (*pb.GetProductAttrPageResponse, error) {
	pageReq := &services.ProductAttrPageRequest{
		Name:     req.Name,
		PageNo:   int(req.PageNo),
		PageSize: int(req.PageSize),
	}
	if err := services.ValidateRequest(pageReq); err != nil {
		return nil, toStatusError(ctx, err)
	}

	page, err := h.service.GetProductAttrPage(ctx, pageReq)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	resp := &pb.GetProductAttrPageResponse{
		List:  make([]*pb.ProductAttrDetail, 0, len(page.Attrs)),
		Total: page.Count,
	}
	for _, d := range page.Attrs {
		resp.List = append(resp.List, detailToProto(d))
	}
	return resp, nil
}

// GetProductAttrList handles the GetProductAttrList RPC
func (h *ProductAttrHandler) GetProductAttrList(ctx context.Context, req *pb.GetProductAttrListRequest) (*pb.GetProductAttrListResponse, error) {
	attrs, err := h.service.GetProductAttrList(ctx)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	resp := &pb.GetProductAttrListResponse{
		List: make([]*pb.ProductAttrSimple, 0, len(attrs)),
	}
	for _, a := range attrs {
		resp.List = append(resp.List, simpleToProto(a))
	}
	return resp, nil
}

// AddProductAttr handles the AddProductAttr RPC
func (h *ProductAttrHandler) AddProductAttr(ctx context.Context, req *pb.AddProductAttrRequest) (*pb.AddProductAttrResponse, error) {
	adminID, err := adminIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	attr, err := h.service.AddProductAttr(ctx, adminID, &services.ProductAttrAddRequest{Name: req.Name})
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	return &pb.AddProductAttrResponse{Attr: attrToProto(attr)}, nil
}

// UpdateProductAttr handles the UpdateProductAttr RPC
func (h *ProductAttrHandler) UpdateProductAttr(ctx context.Context, req *pb.UpdateProductAttrRequest) (*pb.UpdateResponse, error) {
	adminID, err := adminIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.UpdateProductAttr(ctx, adminID, &services.ProductAttrUpdateRequest{ID: req.Id, Name: req.Name}); err != nil {
		return nil, toStatusError(ctx, err)
	}

	return &pb.UpdateResponse{Success: true}, nil
}

// UpdateProductAttrStatus handles the UpdateProductAttrStatus RPC
func (h *ProductAttrHandler) UpdateProductAttrStatus(ctx context.Context, req *pb.UpdateProductAttrStatusRequest) (*pb.UpdateResponse, error) {
	adminID, err := adminIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.UpdateProductAttrStatus(ctx, adminID, req.Id, entities.Status(req.Status)); err != nil {
		return nil, toStatusError(ctx, err)
	}

	return &pb.UpdateResponse{Success: true}, nil
}

// AddProductAttrValue handles the AddProductAttrValue RPC
func (h *ProductAttrHandler) AddProductAttrValue(ctx context.Context, req *pb.AddProductAttrValueRequest) (*pb.AddProductAttrValueResponse, error) {
	adminID, err := adminIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	value, err := h.service.AddProductAttrValue(ctx, adminID, &services.ProductAttrValueAddRequest{AttrID: req.AttrId, Name: req.Name})
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	return &pb.AddProductAttrValueResponse{Value: valueToProto(value)}, nil
}

// UpdateProductAttrValue handles the UpdateProductAttrValue RPC
func (h *ProductAttrHandler) UpdateProductAttrValue(ctx context.Context, req *pb.UpdateProductAttrValueRequest) (*pb.UpdateResponse, error) {
	adminID, err := adminIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.UpdateProductAttrValue(ctx, adminID, &services.ProductAttrValueUpdateRequest{ID: req.Id, Name: req.Name}); err != nil {
		return nil, toStatusError(ctx, err)
	}

	return &pb.UpdateResponse{Success: true}, nil
}

// UpdateProductAttrValueStatus handles the UpdateProductAttrValueStatus RPC
func (h *ProductAttrHandler) UpdateProductAttrValueStatus(ctx context.Context, req *pb.UpdateProductAttrValueStatusRequest) (*pb.UpdateResponse, error) {
	adminID, err := adminIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.UpdateProductAttrValueStatus(ctx, adminID, req.Id, entities.Status(req.Status)); err != nil {
		return nil, toStatusError(ctx, err)
	}

	return &pb.UpdateResponse{Success: true}, nil
}
