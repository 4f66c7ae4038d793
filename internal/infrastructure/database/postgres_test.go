package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/asakaida/prodattr/internal/infrastructure/config"
)

func TestPostgres_Close(t *testing.T) {
	tests := []struct {
		name    string
		pg      *Postgres
		wantErr bool
	}{
		{
			name:    "nil DB",
			pg:      &Postgres{DB: nil},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pg.Close()
			if (err != nil) != tt.wantErr {
				t.Errorf("Postgres.Close() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewPostgres_InvalidConfig(t *testing.T) {
	// Test with invalid configuration that should fail to connect
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     99999,
		User:     "invalid",
		Password: "invalid",
		Database: "invalid",
		SSLMode:  "disable",
	}

	pg, err := NewPostgres(cfg)
	if err == nil {
		if pg != nil && pg.DB != nil {
			pg.Close()
		}
		t.Error("NewPostgres() with invalid config should return error")
	}
}

func TestNewMigrateDriver_NilDB(t *testing.T) {
	if _, err := NewMigrateDriver(nil); err == nil {
		t.Error("NewMigrateDriver(nil) should return error")
	}
}

func TestPostgres_Integration(t *testing.T) {
	// Requires the test database from .env.test; skipped when unreachable
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if err := config.InitConfig("test"); err != nil {
		t.Skipf("config not available: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Skipf("test database not configured: %v", err)
	}

	pg, err := NewPostgres(&cfg.Database)
	if err != nil {
		t.Skipf("test database not reachable: %v", err)
	}
	defer pg.Close()

	if err := pg.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	root, err := config.ProjectRoot()
	if err != nil {
		t.Fatalf("ProjectRoot() error = %v", err)
	}
	if err := pg.RunMigrations(filepath.Join(root, MigrationsPathSuffix)); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	// Applying twice is a no-op
	if err := pg.RunMigrations(filepath.Join(root, MigrationsPathSuffix)); err != nil {
		t.Errorf("second RunMigrations() error = %v", err)
	}

	for _, table := range []string{"product_attr", "product_attr_value"} {
		var exists bool
		err := pg.DB.QueryRow(
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`, table,
		).Scan(&exists)
		if err != nil {
			t.Fatalf("failed to check table %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s does not exist after migrations", table)
		}
	}

	if err := pg.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
