package prodattrv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ProductAttrService_ServiceName is the fully qualified gRPC service name
const ProductAttrService_ServiceName = "prodattr.v1.ProductAttrService"

// Full method names
const (
	ProductAttrService_ValidateProductAttrAndValuePairs_FullMethodName = "/prodattr.v1.ProductAttrService/ValidateProductAttrAndValuePairs"
	ProductAttrService_GetProductAttrPage_FullMethodName               = "/prodattr.v1.ProductAttrService/GetProductAttrPage"
	ProductAttrService_GetProductAttrList_FullMethodName               = "/prodattr.v1.ProductAttrService/GetProductAttrList"
	ProductAttrService_AddProductAttr_FullMethodName                   = "/prodattr.v1.ProductAttrService/AddProductAttr"
	ProductAttrService_UpdateProductAttr_FullMethodName                = "/prodattr.v1.ProductAttrService/UpdateProductAttr"
	ProductAttrService_UpdateProductAttrStatus_FullMethodName          = "/prodattr.v1.ProductAttrService/UpdateProductAttrStatus"
	ProductAttrService_AddProductAttrValue_FullMethodName              = "/prodattr.v1.ProductAttrService/AddProductAttrValue"
	ProductAttrService_UpdateProductAttrValue_FullMethodName           = "/prodattr.v1.ProductAttrService/UpdateProductAttrValue"
	ProductAttrService_UpdateProductAttrValueStatus_FullMethodName     = "/prodattr.v1.ProductAttrService/UpdateProductAttrValueStatus"
)

// ProductAttrServiceClient is the client API for ProductAttrService.
// Every call is sent with Codec.
type ProductAttrServiceClient interface {
	ValidateProductAttrAndValuePairs(ctx context.Context, in *ValidateProductAttrAndValuePairsRequest, opts ...grpc.CallOption) (*ValidateProductAttrAndValuePairsResponse, error)
	GetProductAttrPage(ctx context.Context, in *GetProductAttrPageRequest, opts ...grpc.CallOption) (*GetProductAttrPageResponse, error)
	GetProductAttrList(ctx context.Context, in *GetProductAttrListRequest, opts ...grpc.CallOption) (*GetProductAttrListResponse, error)
	AddProductAttr(ctx context.Context, in *AddProductAttrRequest, opts ...grpc.CallOption) (*AddProductAttrResponse, error)
	UpdateProductAttr(ctx context.Context, in *UpdateProductAttrRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
	UpdateProductAttrStatus(ctx context.Context, in *UpdateProductAttrStatusRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
	AddProductAttrValue(ctx context.Context, in *AddProductAttrValueRequest, opts ...grpc.CallOption) (*AddProductAttrValueResponse, error)
	UpdateProductAttrValue(ctx context.Context, in *UpdateProductAttrValueRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
	UpdateProductAttrValueStatus(ctx context.Context, in *UpdateProductAttrValueStatusRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
}

type productAttrServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewProductAttrServiceClient creates a client bound to cc
func NewProductAttrServiceClient(cc grpc.ClientConnInterface) ProductAttrServiceClient {
	return &productAttrServiceClient{cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
}

func (c *productAttrServiceClient) ValidateProductAttrAndValuePairs(ctx context.Context, in *ValidateProductAttrAndValuePairsRequest, opts ...grpc.CallOption) (*ValidateProductAttrAndValuePairsResponse, error) {
	out := new(ValidateProductAttrAndValuePairsResponse)
	err := c.cc.Invoke(ctx, ProductAttrService_ValidateProductAttrAndValuePairs_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productAttrServiceClient) GetProductAttrPage(ctx context.Context, in *GetProductAttrPageRequest, opts ...grpc.CallOption) (*GetProductAttrPageResponse, error) {
	out := new(GetProductAttrPageResponse)
	err := c.cc.Invoke(ctx, ProductAttrService_GetProductAttrPage_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productAttrServiceClient) GetProductAttrList(ctx context.Context, in *GetProductAttrListRequest, opts ...grpc.CallOption) (*GetProductAttrListResponse, error) {
	out := new(GetProductAttrListResponse)
	err := c.cc.Invoke(ctx, ProductAttrService_GetProductAttrList_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productAttrServiceClient) AddProductAttr(ctx context.Context, in *AddProductAttrRequest, opts ...grpc.CallOption) (*AddProductAttrResponse, error) {
	out := new(AddProductAttrResponse)
	err := c.cc.Invoke(ctx, ProductAttrService_AddProductAttr_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productAttrServiceClient) UpdateProductAttr(ctx context.Context, in *UpdateProductAttrRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	out := new(UpdateResponse)
	err := c.cc.Invoke(ctx, ProductAttrService_UpdateProductAttr_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productAttrServiceClient) UpdateProductAttrStatus(ctx context.Context, in *UpdateProductAttrStatusRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	out := new(UpdateResponse)
	err := c.cc.Invoke(ctx, ProductAttrService_UpdateProductAttrStatus_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productAttrServiceClient) AddProductAttrValue(ctx context.Context, in *AddProductAttrValueRequest, opts ...grpc.CallOption) (*AddProductAttrValueResponse, error) {
	out := new(AddProductAttrValueResponse)
	err := c.cc.Invoke(ctx, ProductAttrService_AddProductAttrValue_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productAttrServiceClient) UpdateProductAttrValue(ctx context.Context, in *UpdateProductAttrValueRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	out := new(UpdateResponse)
	err := c.cc.Invoke(ctx, ProductAttrService_UpdateProductAttrValue_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productAttrServiceClient) UpdateProductAttrValueStatus(ctx context.Context, in *UpdateProductAttrValueStatusRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	out := new(UpdateResponse)
	err := c.cc.Invoke(ctx, ProductAttrService_UpdateProductAttrValueStatus_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProductAttrServiceServer is the server API for ProductAttrService.
// Implementations must embed UnimplementedProductAttrServiceServer.
type ProductAttrServiceServer interface {
	ValidateProductAttrAndValuePairs(context.Context, *ValidateProductAttrAndValuePairsRequest) (*ValidateProductAttrAndValuePairsResponse, error)
	GetProductAttrPage(context.Context, *GetProductAttrPageRequest) (*GetProductAttrPageResponse, error)
	GetProductAttrList(context.Context, *GetProductAttrListRequest) (*GetProductAttrListResponse, error)
	AddProductAttr(context.Context, *AddProductAttrRequest) (*AddProductAttrResponse, error)
	UpdateProductAttr(context.Context, *UpdateProductAttrRequest) (*UpdateResponse, error)
	UpdateProductAttrStatus(context.Context, *UpdateProductAttrStatusRequest) (*UpdateResponse, error)
	AddProductAttrValue(context.Context, *AddProductAttrValueRequest) (*AddProductAttrValueResponse, error)
	UpdateProductAttrValue(context.Context, *UpdateProductAttrValueRequest) (*UpdateResponse, error)
	UpdateProductAttrValueStatus(context.Context, *UpdateProductAttrValueStatusRequest) (*UpdateResponse, error)
	mustEmbedUnimplementedProductAttrServiceServer()
}

// UnimplementedProductAttrServiceServer returns Unimplemented for every method
type UnimplementedProductAttrServiceServer struct{}

func (UnimplementedProductAttrServiceServer) ValidateProductAttrAndValuePairs(context.Context, *ValidateProductAttrAndValuePairsRequest) (*ValidateProductAttrAndValuePairsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateProductAttrAndValuePairs not implemented")
}

func (UnimplementedProductAttrServiceServer) GetProductAttrPage(context.Context, *GetProductAttrPageRequest) (*GetProductAttrPageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProductAttrPage not implemented")
}

func (UnimplementedProductAttrServiceServer) GetProductAttrList(context.Context, *GetProductAttrListRequest) (*GetProductAttrListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProductAttrList not implemented")
}

func (UnimplementedProductAttrServiceServer) AddProductAttr(context.Context, *AddProductAttrRequest) (*AddProductAttrResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddProductAttr not implemented")
}

func (UnimplementedProductAttrServiceServer) UpdateProductAttr(context.Context, *UpdateProductAttrRequest) (*UpdateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateProductAttr not implemented")
}

func (UnimplementedProductAttrServiceServer) UpdateProductAttrStatus(context.Context, *UpdateProductAttrStatusRequest) (*UpdateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateProductAttrStatus not implemented")
}

func (UnimplementedProductAttrServiceServer) AddProductAttrValue(context.Context, *AddProductAttrValueRequest) (*AddProductAttrValueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddProductAttrValue not implemented")
}

func (UnimplementedProductAttrServiceServer) UpdateProductAttrValue(context.Context, *UpdateProductAttrValueRequest) (*UpdateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateProductAttrValue not implemented")
}

func (UnimplementedProductAttrServiceServer) UpdateProductAttrValueStatus(context.Context, *UpdateProductAttrValueStatusRequest) (*UpdateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateProductAttrValueStatus not implemented")
}

func (UnimplementedProductAttrServiceServer) mustEmbedUnimplementedProductAttrServiceServer() {}

// RegisterProductAttrServiceServer registers srv on s.
// The server must be created with grpc.ForceServerCodec(Codec{}).
func RegisterProductAttrServiceServer(s grpc.ServiceRegistrar, srv ProductAttrServiceServer) {
	s.RegisterService(&ProductAttrService_ServiceDesc, srv)
}

func _ProductAttrService_ValidateProductAttrAndValuePairs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateProductAttrAndValuePairsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductAttrServiceServer).ValidateProductAttrAndValuePairs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductAttrService_ValidateProductAttrAndValuePairs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductAttrServiceServer).ValidateProductAttrAndValuePairs(ctx, req.(*ValidateProductAttrAndValuePairsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductAttrService_GetProductAttrPage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProductAttrPageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductAttrServiceServer).GetProductAttrPage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductAttrService_GetProductAttrPage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductAttrServiceServer).GetProductAttrPage(ctx, req.(*GetProductAttrPageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductAttrService_GetProductAttrList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProductAttrListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductAttrServiceServer).GetProductAttrList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductAttrService_GetProductAttrList_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductAttrServiceServer).GetProductAttrList(ctx, req.(*GetProductAttrListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductAttrService_AddProductAttr_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddProductAttrRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductAttrServiceServer).AddProductAttr(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductAttrService_AddProductAttr_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductAttrServiceServer).AddProductAttr(ctx, req.(*AddProductAttrRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductAttrService_UpdateProductAttr_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateProductAttrRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductAttrServiceServer).UpdateProductAttr(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductAttrService_UpdateProductAttr_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductAttrServiceServer).UpdateProductAttr(ctx, req.(*UpdateProductAttrRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductAttrService_UpdateProductAttrStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateProductAttrStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductAttrServiceServer).UpdateProductAttrStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductAttrService_UpdateProductAttrStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductAttrServiceServer).UpdateProductAttrStatus(ctx, req.(*UpdateProductAttrStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductAttrService_AddProductAttrValue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddProductAttrValueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductAttrServiceServer).AddProductAttrValue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductAttrService_AddProductAttrValue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductAttrServiceServer).AddProductAttrValue(ctx, req.(*AddProductAttrValueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductAttrService_UpdateProductAttrValue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateProductAttrValueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductAttrServiceServer).UpdateProductAttrValue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductAttrService_UpdateProductAttrValue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductAttrServiceServer).UpdateProductAttrValue(ctx, req.(*UpdateProductAttrValueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductAttrService_UpdateProductAttrValueStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateProductAttrValueStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductAttrServiceServer).UpdateProductAttrValueStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductAttrService_UpdateProductAttrValueStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductAttrServiceServer).UpdateProductAttrValueStatus(ctx, req.(*UpdateProductAttrValueStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProductAttrService_ServiceDesc is the grpc.ServiceDesc for ProductAttrService
var ProductAttrService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ProductAttrService_ServiceName,
	HandlerType: (*ProductAttrServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ValidateProductAttrAndValuePairs",
			Handler:    _ProductAttrService_ValidateProductAttrAndValuePairs_Handler,
		},
		{
			MethodName: "GetProductAttrPage",
			Handler:    _ProductAttrService_GetProductAttrPage_Handler,
		},
		{
			MethodName: "GetProductAttrList",
			Handler:    _ProductAttrService_GetProductAttrList_Handler,
		},
		{
			MethodName: "AddProductAttr",
			Handler:    _ProductAttrService_AddProductAttr_Handler,
		},
		{
			MethodName: "UpdateProductAttr",
			Handler:    _ProductAttrService_UpdateProductAttr_Handler,
		},
		{
			MethodName: "UpdateProductAttrStatus",
			Handler:    _ProductAttrService_UpdateProductAttrStatus_Handler,
		},
		{
			MethodName: "AddProductAttrValue",
			Handler:    _ProductAttrService_AddProductAttrValue_Handler,
		},
		{
			MethodName: "UpdateProductAttrValue",
			Handler:    _ProductAttrService_UpdateProductAttrValue_Handler,
		},
		{
			MethodName: "UpdateProductAttrValueStatus",
			Handler:    _ProductAttrService_UpdateProductAttrValueStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/prodattr/v1/service.go",
}
