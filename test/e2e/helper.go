package e2e

import (
	"context"
	"database/sql"
	"net"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	pb "github.com/asakaida/prodattr/api/prodattr/v1"
	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/handlers"
	"github.com/asakaida/prodattr/internal/handlers/rest"
	"github.com/asakaida/prodattr/internal/infrastructure/logger"
	"github.com/asakaida/prodattr/internal/infrastructure/metrics"
	"github.com/asakaida/prodattr/internal/repositories/postgres"
	"github.com/asakaida/prodattr/internal/services"
	"github.com/asakaida/prodattr/pkg/cache/memorycache"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// E2ETestServer represents an E2E test server
type E2ETestServer struct {
	Server       *grpc.Server
	Client       pb.ProductAttrServiceClient
	HealthClient healthpb.HealthClient
	HTTP         *httptest.Server
	Collector    *metrics.Collector
	Conn         *grpc.ClientConn
	DB           *sql.DB
	Listener     *bufconn.Listener
}

// SetupE2ETest wires the full stack against the test database.
// The test is skipped when the database is not reachable.
func SetupE2ETest(t *testing.T) *E2ETestServer {
	t.Helper()

	db := postgres.SetupTestDB(t)

	// Initialize service with the list cache enabled
	service := services.NewProductAttrService(
		postgres.NewPostgresProductAttrRepository(db),
		postgres.NewPostgresProductAttrValueRepository(db),
		zap.NewNop(),
	)
	listCache := memorycache.New(&memorycache.Config[[]*entities.ProductAttrSimple]{
		MaxSizeBytes:  1024 * 1024,
		EnableMetrics: true,
	})
	service.SetCache(listCache, time.Minute)

	collector := metrics.NewCollector()
	collector.SetCache(listCache)

	// Create in-memory gRPC server with bufconn
	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(
			logger.UnaryServerInterceptor(zap.NewNop()),
			metrics.UnaryServerInterceptor(collector, nil),
		),
	)
	pb.RegisterProductAttrServiceServer(server, handlers.NewProductAttrHandler(service))
	healthpb.RegisterHealthServer(server, health.NewServer())

	// Start server in background
	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	// Create client connection
	bufDialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	conn, err := grpc.NewClient(
		"passthrough://bufconn",
		grpc.WithContextDialer(bufDialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to create client connection: %v", err)
	}

	healthCheck := func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
	httpServer := httptest.NewServer(rest.NewServer(service, rest.WithHealthCheck(healthCheck)))

	return &E2ETestServer{
		Server:       server,
		Client:       pb.NewProductAttrServiceClient(conn),
		HealthClient: healthpb.NewHealthClient(conn),
		HTTP:         httpServer,
		Collector:    collector,
		Conn:         conn,
		DB:           db,
		Listener:     listener,
	}
}

// Teardown cleans up the E2E test environment
func (e *E2ETestServer) Teardown(t *testing.T) {
	t.Helper()

	if e.HTTP != nil {
		e.HTTP.Close()
	}
	if e.Conn != nil {
		e.Conn.Close()
	}
	if e.Server != nil {
		e.Server.Stop()
	}
	if e.Listener != nil {
		e.Listener.Close()
	}
	if e.DB != nil {
		postgres.CleanupTestDB(t, e.DB)
	}
}

// AdminContext returns a context carrying the admin id metadata
func AdminContext(ctx context.Context, adminID int64) context.Context {
	return metadata.AppendToOutgoingContext(ctx, handlers.AdminIDMetadataKey, strconv.FormatInt(adminID, 10))
}
