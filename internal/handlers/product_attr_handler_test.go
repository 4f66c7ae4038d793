package handlers

import (
	"context"
	"net"
	"strconv"
	"testing"

	pb "github.com/asakaida/prodattr/api/prodattr/v1"
	"github.com/asakaida/prodattr/internal/repositories/memory"
	"github.com/asakaida/prodattr/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

type testServer struct {
	client pb.ProductAttrServiceClient
	health healthpb.HealthClient
}

// setupTestServer starts the handler on an in-memory listener backed by memory repositories
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	service := services.NewProductAttrService(
		memory.NewProductAttrRepository(),
		memory.NewProductAttrValueRepository(),
		zap.NewNop(),
	)

	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer(grpc.ForceServerCodec(pb.Codec{}))
	pb.RegisterProductAttrServiceServer(server, NewProductAttrHandler(service))
	healthpb.RegisterHealthServer(server, health.NewServer())

	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	conn, err := grpc.NewClient(
		"passthrough://bufconn",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		server.Stop()
		listener.Close()
	})

	return &testServer{
		client: pb.NewProductAttrServiceClient(conn),
		health: healthpb.NewHealthClient(conn),
	}
}

func adminContext(adminID int64) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), AdminIDMetadataKey, strconv.FormatInt(adminID, 10))
}

func TestProductAttrHandler_Lifecycle(t *testing.T) {
	ts := setupTestServer(t)
	ctx := adminContext(1)

	color, err := ts.client.AddProductAttr(ctx, &pb.AddProductAttrRequest{Name: "Color"})
	require.NoError(t, err)
	require.NotNil(t, color.Attr)
	assert.Equal(t, "Color", color.Attr.Name)
	assert.Equal(t, pb.StatusEnabled, color.Attr.Status)

	size, err := ts.client.AddProductAttr(ctx, &pb.AddProductAttrRequest{Name: "Size"})
	require.NoError(t, err)

	red, err := ts.client.AddProductAttrValue(ctx, &pb.AddProductAttrValueRequest{AttrId: color.Attr.Id, Name: "Red"})
	require.NoError(t, err)
	m, err := ts.client.AddProductAttrValue(ctx, &pb.AddProductAttrValueRequest{AttrId: size.Attr.Id, Name: "M"})
	require.NoError(t, err)

	t.Run("page lists both attributes with their values", func(t *testing.T) {
		page, err := ts.client.GetProductAttrPage(ctx, &pb.GetProductAttrPageRequest{PageNo: 0, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.List, 2)
		require.Len(t, page.List[0].Values, 1)
		assert.Equal(t, "Red", page.List[0].Values[0].Name)
	})

	t.Run("disabled attribute drops out of the enabled list", func(t *testing.T) {
		resp, err := ts.client.UpdateProductAttrStatus(ctx, &pb.UpdateProductAttrStatusRequest{Id: size.Attr.Id, Status: pb.StatusDisabled})
		require.NoError(t, err)
		assert.True(t, resp.Success)

		list, err := ts.client.GetProductAttrList(ctx, &pb.GetProductAttrListRequest{})
		require.NoError(t, err)
		require.Len(t, list.List, 1)
		assert.Equal(t, "Color", list.List[0].Name)
		assert.Equal(t, []*pb.ProductAttrValueSimple{{Id: red.Value.Id, Name: "Red"}}, list.List[0].Values)
	})

	t.Run("validation with and without status check", func(t *testing.T) {
		ids := []int64{red.Value.Id, m.Value.Id}

		_, err := ts.client.ValidateProductAttrAndValuePairs(ctx, &pb.ValidateProductAttrAndValuePairsRequest{AttrValueIds: ids, ValidStatus: true})
		assert.Equal(t, codes.NotFound, status.Code(err))

		resp, err := ts.client.ValidateProductAttrAndValuePairs(ctx, &pb.ValidateProductAttrAndValuePairsRequest{AttrValueIds: ids})
		require.NoError(t, err)
		assert.Equal(t, []*pb.ProductAttrAndValuePair{
			{AttrId: color.Attr.Id, AttrName: "Color", AttrValueId: red.Value.Id, AttrValueName: "Red"},
			{AttrId: size.Attr.Id, AttrName: "Size", AttrValueId: m.Value.Id, AttrValueName: "M"},
		}, resp.Pairs)
	})

	t.Run("rename and disable a value", func(t *testing.T) {
		_, err := ts.client.UpdateProductAttrValue(ctx, &pb.UpdateProductAttrValueRequest{Id: red.Value.Id, Name: "Crimson"})
		require.NoError(t, err)
		_, err = ts.client.UpdateProductAttrValueStatus(ctx, &pb.UpdateProductAttrValueStatusRequest{Id: red.Value.Id, Status: pb.StatusDisabled})
		require.NoError(t, err)

		list, err := ts.client.GetProductAttrList(ctx, &pb.GetProductAttrListRequest{})
		require.NoError(t, err)
		require.Len(t, list.List, 1)
		assert.NotNil(t, list.List[0].Values)
		assert.Empty(t, list.List[0].Values)
	})

	t.Run("rename attribute", func(t *testing.T) {
		resp, err := ts.client.UpdateProductAttr(ctx, &pb.UpdateProductAttrRequest{Id: color.Attr.Id, Name: "Colour"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
	})
}

func TestProductAttrHandler_Errors(t *testing.T) {
	ts := setupTestServer(t)
	ctx := adminContext(1)

	_, err := ts.client.AddProductAttr(ctx, &pb.AddProductAttrRequest{Name: "Color"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		call     func(opts ...grpc.CallOption) error
		wantCode codes.Code
		wantBiz  string
	}{
		{
			name: "duplicate attribute",
			call: func(opts ...grpc.CallOption) error {
				_, err := ts.client.AddProductAttr(ctx, &pb.AddProductAttrRequest{Name: "Color"}, opts...)
				return err
			},
			wantCode: codes.AlreadyExists,
			wantBiz:  "1003002001",
		},
		{
			name: "unknown attribute",
			call: func(opts ...grpc.CallOption) error {
				_, err := ts.client.UpdateProductAttr(ctx, &pb.UpdateProductAttrRequest{Id: 99, Name: "Size"}, opts...)
				return err
			},
			wantCode: codes.NotFound,
			wantBiz:  "1003002000",
		},
		{
			name: "same status",
			call: func(opts ...grpc.CallOption) error {
				_, err := ts.client.UpdateProductAttrStatus(ctx, &pb.UpdateProductAttrStatusRequest{Id: 1, Status: pb.StatusEnabled}, opts...)
				return err
			},
			wantCode: codes.FailedPrecondition,
			wantBiz:  "1003002002",
		},
		{
			name: "invalid status",
			call: func(opts ...grpc.CallOption) error {
				_, err := ts.client.UpdateProductAttrStatus(ctx, &pb.UpdateProductAttrStatusRequest{Id: 1, Status: 7}, opts...)
				return err
			},
			wantCode: codes.InvalidArgument,
			wantBiz:  "1001001000",
		},
		{
			name: "page size out of range",
			call: func(opts ...grpc.CallOption) error {
				_, err := ts.client.GetProductAttrPage(ctx, &pb.GetProductAttrPageRequest{PageSize: 0}, opts...)
				return err
			},
			wantCode: codes.InvalidArgument,
			wantBiz:  "1001001000",
		},
		{
			name: "unknown value",
			call: func(opts ...grpc.CallOption) error {
				_, err := ts.client.ValidateProductAttrAndValuePairs(ctx, &pb.ValidateProductAttrAndValuePairsRequest{AttrValueIds: []int64{5}}, opts...)
				return err
			},
			wantCode: codes.NotFound,
			wantBiz:  "1003003000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var trailer metadata.MD
			err := tt.call(grpc.Trailer(&trailer))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, status.Code(err))
			assert.Equal(t, []string{tt.wantBiz}, trailer.Get(ErrorCodeTrailerKey))
		})
	}
}

func TestProductAttrHandler_AdminID(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("mutation without admin id", func(t *testing.T) {
		_, err := ts.client.AddProductAttr(context.Background(), &pb.AddProductAttrRequest{Name: "Color"})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("malformed admin id", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), AdminIDMetadataKey, "root")
		_, err := ts.client.AddProductAttr(ctx, &pb.AddProductAttrRequest{Name: "Color"})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("reads do not need an admin id", func(t *testing.T) {
		list, err := ts.client.GetProductAttrList(context.Background(), &pb.GetProductAttrListRequest{})
		require.NoError(t, err)
		assert.Empty(t, list.List)
	})
}

func TestHealthOverCodec(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.health.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}
