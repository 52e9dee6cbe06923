package postgres

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadMigrationsFromFS_Success(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/0001_catalog.up.sql": {
			Data: []byte("CREATE TABLE test_products (id TEXT);"),
		},
		"sql/migrations/0001_catalog.down.sql": {
			Data: []byte("DROP TABLE IF EXISTS test_products;"),
		},
		"sql/migrations/0002_cart.up.sql": {
			Data: []byte("CREATE TABLE test_cart (id TEXT);"),
		},
		"sql/migrations/0002_cart.down.sql": {
			Data: []byte("DROP TABLE IF EXISTS test_cart;"),
		},
	}

	migrations, err := loadMigrationsFromFS(fsys)
	if err != nil {
		t.Fatalf("loadMigrationsFromFS failed: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}

	if migrations[0].Version != 1 || migrations[0].Name != "catalog" {
		t.Fatalf("unexpected first migration: %+v", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "cart" {
		t.Fatalf("unexpected second migration: %+v", migrations[1])
	}
}

func TestLoadMigrationsFromFS_MissingDown(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/0001_init.up.sql": {
			Data: []byte("CREATE TABLE test_a (id INT);"),
		},
	}

	_, err := loadMigrationsFromFS(fsys)
	if err == nil {
		t.Fatal("expected error for missing down migration")
	}
	if !strings.Contains(err.Error(), "both up and down") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMigrationsFromFS_InvalidFilename(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/not_a_migration.sql": {
			Data: []byte("SELECT 1;"),
		},
	}

	_, err := loadMigrationsFromFS(fsys)
	if err == nil {
		t.Fatal("expected error for invalid migration file name")
	}
}

func TestLoadMigrationsFromFS_EmptyFile(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/0001_init.up.sql": {
			Data: []byte("   \n"),
		},
		"sql/migrations/0001_init.down.sql": {
			Data: []byte("DROP TABLE IF EXISTS test;"),
		},
	}

	_, err := loadMigrationsFromFS(fsys)
	if err == nil {
		t.Fatal("expected error for empty migration file body")
	}
}

func TestLoadMigrationsFromFS_DuplicateDirection(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/0001_init.up.sql":   {Data: []byte("SELECT 1;")},
		"sql/migrations/001_init.up.sql":    {Data: []byte("SELECT 2;")},
		"sql/migrations/0001_init.down.sql": {Data: []byte("SELECT 3;")},
	}

	_, err := loadMigrationsFromFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate up migration") {
		t.Fatalf("expected duplicate migration error, got %v", err)
	}
}

func TestEmbeddedMigrations_AreComplete(t *testing.T) {
	t.Parallel()

	migrations, err := loadMigrationsFromFS(migrationsFS)
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}

	want := []string{
		"0001_catalog",
		"0002_cart_items",
		"0003_orders",
		"0004_timeline_events",
		"0005_outbox_messages",
		"0006_idempotency_keys",
	}
	if len(migrations) != len(want) {
		t.Fatalf("expected %d migrations, got %d", len(want), len(migrations))
	}
	for i, m := range migrations {
		if m.label() != want[i] {
			t.Fatalf("migration %d: expected %s, got %s", i, want[i], m.label())
		}
	}
}

func TestPlanMigrations(t *testing.T) {
	t.Parallel()

	migrations := []migration{
		{Version: 1, Name: "a", UpSQL: "u1", DownSQL: "d1"},
		{Version: 2, Name: "b", UpSQL: "u2", DownSQL: "d2"},
		{Version: 3, Name: "c", UpSQL: "u3", DownSQL: "d3"},
	}

	tests := []struct {
		name      string
		applied   map[int64]bool
		direction migrationDirection
		steps     int
		want      []int64
		wantErr   bool
	}{
		{name: "up all", applied: map[int64]bool{}, direction: migrationUp, want: []int64{1, 2, 3}},
		{name: "up skips applied", applied: map[int64]bool{1: true}, direction: migrationUp, want: []int64{2, 3}},
		{name: "up limited", applied: map[int64]bool{}, direction: migrationUp, steps: 1, want: []int64{1}},
		{name: "down newest first", applied: map[int64]bool{1: true, 2: true, 3: true}, direction: migrationDown, steps: 2, want: []int64{3, 2}},
		{name: "down nothing applied", applied: map[int64]bool{}, direction: migrationDown, steps: 1, want: nil},
		{name: "down unknown version", applied: map[int64]bool{9: true}, direction: migrationDown, steps: 1, wantErr: true},
		{name: "unsupported direction", applied: map[int64]bool{}, direction: migrationDirection("sideways"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planMigrations(migrations, tt.applied, tt.direction, tt.steps)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(plan) != len(tt.want) {
				t.Fatalf("expected %d migrations in plan, got %d", len(tt.want), len(plan))
			}
			for i, m := range plan {
				if m.Version != tt.want[i] {
					t.Fatalf("plan[%d]: expected version %d, got %d", i, tt.want[i], m.Version)
				}
			}
		})
	}
}

func TestMigrationState_ReportsPending(t *testing.T) {
	t.Parallel()

	migrations := []migration{
		{Version: 1, Name: "catalog"},
		{Version: 2, Name: "cart_items"},
		{Version: 3, Name: "orders"},
	}

	state := migrationState(migrations, map[int64]bool{1: true, 2: true})
	if state.Version != 2 || state.Applied != 2 {
		t.Fatalf("unexpected state: %+v", state)
	}
	if len(state.Pending) != 1 || state.Pending[0] != "0003_orders" {
		t.Fatalf("unexpected pending list: %v", state.Pending)
	}
}
