package handlers

import (
	"context"
	"errors"
	"strconv"

	pb "github.com/asakaida/prodattr/api/prodattr/v1"
	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	// AdminIDMetadataKey carries the id of the operator performing a mutation
	AdminIDMetadataKey = "x-admin-id"
	// ErrorCodeTrailerKey carries the business error code of a failed call
	ErrorCodeTrailerKey = "x-error-code"
)

// === Shared Helper Functions ===

// adminIDFromContext reads the operator id from incoming metadata
func adminIDFromContext(ctx context.Context) (int64, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return 0, status.Error(codes.Unauthenticated, "x-admin-id metadata is required")
	}
	vals := md.Get(AdminIDMetadataKey)
	if len(vals) == 0 || vals[0] == "" {
		return 0, status.Error(codes.Unauthenticated, "x-admin-id metadata is required")
	}
	id, err := strconv.ParseInt(vals[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, status.Errorf(codes.Unauthenticated, "invalid x-admin-id: %q", vals[0])
	}
	return id, nil
}

// toStatusError converts a service error into a gRPC status and attaches
// the business code as a trailer
func toStatusError(ctx context.Context, err error) error {
	code := services.CodeOf(err)
	if code != 0 {
		// trailer errors are ignored
		_ = grpc.SetTrailer(ctx, metadata.Pairs(ErrorCodeTrailerKey, strconv.Itoa(code)))
	}

	switch {
	case errors.Is(err, services.ErrProductAttrNotExists),
		errors.Is(err, services.ErrProductAttrValueNotExists):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, services.ErrProductAttrExists),
		errors.Is(err, services.ErrProductAttrValueExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, services.ErrProductAttrStatusEquals),
		errors.Is(err, services.ErrProductAttrValueStatusEquals):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, services.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}

func attrToProto(a *entities.ProductAttr) *pb.ProductAttr {
	return &pb.ProductAttr{
		Id:         a.ID,
		Name:       a.Name,
		Status:     int32(a.Status),
		CreateTime: a.CreatedAt,
	}
}

func valueToProto(v *entities.ProductAttrValue) *pb.ProductAttrValue {
	return &pb.ProductAttrValue{
		Id:         v.ID,
		AttrId:     v.AttrID,
		Name:       v.Name,
		Status:     int32(v.Status),
		CreateTime: v.CreatedAt,
	}
}

func detailToProto(d *entities.ProductAttrDetail) *pb.ProductAttrDetail {
	values := make([]*pb.ProductAttrValue, 0, len(d.Values))
	for _, v := range d.Values {
		values = append(values, &pb.ProductAttrValue{
			Id:         v.ID,
			AttrId:     v.AttrID,
			Name:       v.Name,
			Status:     int32(v.Status),
			CreateTime: v.CreatedAt,
		})
	}
	return &pb.ProductAttrDetail{
		Id:         d.ID,
		Name:       d.Name,
		Status:     int32(d.Status),
		CreateTime: d.CreatedAt,
		Values:     values,
	}
}

func simpleToProto(s *entities.ProductAttrSimple) *pb.ProductAttrSimple {
	values := make([]*pb.ProductAttrValueSimple, 0, len(s.Values))
	for _, v := range s.Values {
		values = append(values, &pb.ProductAttrValueSimple{Id: v.ID, Name: v.Name})
	}
	return &pb.ProductAttrSimple{
		Id:     s.ID,
		Name:   s.Name,
		Values: values,
	}
}

func pairToProto(p *entities.ProductAttrAndValuePair) *pb.ProductAttrAndValuePair {
	return &pb.ProductAttrAndValuePair{
		AttrId:        p.AttrID,
		AttrName:      p.AttrName,
		AttrValueId:   p.AttrValueID,
		AttrValueName: p.AttrValueName,
	}
}
