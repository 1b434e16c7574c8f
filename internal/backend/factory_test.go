package backend

import (
	"context"
	"path/filepath"
	"testing"

	"gastos/internal/config"
)

func TestFromAppConfig(t *testing.T) {
	cfg, err := FromAppConfig(&config.Config{
		DataBackend:  "sqlite",
		FilePath:     "./data/gastos.json",
		SQLiteDBPath: "./data/gastos.db",
	})
	if err != nil {
		t.Fatalf("FromAppConfig: %v", err)
	}
	if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "./data/gastos.db" {
		t.Errorf("unexpected backend config: %+v", cfg)
	}

	if _, err := FromAppConfig(&config.Config{DataBackend: "redis"}); err == nil {
		t.Error("expected error for unknown backend type")
	}
	if _, err := FromAppConfig(nil); err == nil {
		t.Error("expected error for nil app config")
	}
}

func TestCreateBackend(t *testing.T) {
	factory := NewFactory(nil)
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		result, err := factory.CreateBackend(ctx, Config{Type: MemoryBackend})
		if err != nil {
			t.Fatalf("create memory backend: %v", err)
		}
		if result.Store == nil {
			t.Error("memory backend must provide a store")
		}
		if result.Cleanup != nil {
			t.Error("memory backend needs no cleanup")
		}
	})

	t.Run("file", func(t *testing.T) {
		result, err := factory.CreateBackend(ctx, Config{
			Type:     FileBackend,
			FilePath: filepath.Join(t.TempDir(), "gastos.json"),
		})
		if err != nil {
			t.Fatalf("create file backend: %v", err)
		}
		if result.Store == nil {
			t.Error("file backend must provide a store")
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		result, err := factory.CreateBackend(ctx, Config{
			Type:         SQLiteBackend,
			SQLiteDBPath: filepath.Join(t.TempDir(), "gastos.db"),
		})
		if err != nil {
			t.Fatalf("create sqlite backend: %v", err)
		}
		if result.Store == nil || result.Cleanup == nil {
			t.Error("sqlite backend must provide store and cleanup")
		}
		if err := result.Cleanup(); err != nil {
			t.Errorf("cleanup: %v", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		if _, err := factory.CreateBackend(ctx, Config{Type: FileBackend}); err == nil {
			t.Error("expected error for file backend without path")
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := factory.CreateBackend(ctx, Config{Type: "redis"}); err == nil {
			t.Error("expected error for unknown backend type")
		}
	})
}
