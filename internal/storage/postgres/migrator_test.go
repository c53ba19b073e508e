package postgres

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
)

func sqlFile(body string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(body)} }

func TestLoadMigrationsFromFS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		files     fstest.MapFS
		want      []string
		wantError string
	}{
		{
			name: "pairs sorted by version",
			files: fstest.MapFS{
				"sql/migrations/0002_stock.up.sql":     sqlFile("CREATE TABLE stock (id INT);"),
				"sql/migrations/0002_stock.down.sql":   sqlFile("DROP TABLE stock;"),
				"sql/migrations/0001_catalog.up.sql":   sqlFile("CREATE TABLE catalog (id INT);"),
				"sql/migrations/0001_catalog.down.sql": sqlFile("DROP TABLE catalog;"),
			},
			want: []string{"catalog", "stock"},
		},
		{
			name:      "missing down",
			files:     fstest.MapFS{"sql/migrations/0001_catalog.up.sql": sqlFile("SELECT 1;")},
			wantError: "both up and down",
		},
		{
			name:      "unparsable name",
			files:     fstest.MapFS{"sql/migrations/catalog.sql": sqlFile("SELECT 1;")},
			wantError: "catalog.sql",
		},
		{
			name: "blank body",
			files: fstest.MapFS{
				"sql/migrations/0001_catalog.up.sql":   sqlFile(" \n\t"),
				"sql/migrations/0001_catalog.down.sql": sqlFile("DROP TABLE catalog;"),
			},
			wantError: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loadMigrationsFromFS(tt.files)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, m := range got {
				require.Equal(t, int64(i+1), m.Version)
				require.Equal(t, tt.want[i], m.Name)
			}
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	got, err := loadMigrationsFromFS(migrationsFS)
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, m := range got {
		names = append(names, m.Name)
	}
	require.Equal(t, []string{"catalog", "orders", "outbox", "idempotency"}, names)
}

func TestPlanMigrations(t *testing.T) {
	t.Parallel()

	all := []migration{{Version: 1, Name: "a"}, {Version: 2, Name: "b"}, {Version: 3, Name: "c"}}
	now := time.Now()
	firstTwo := map[int64]time.Time{1: now, 2: now}

	tests := []struct {
		name      string
		applied   map[int64]time.Time
		direction migrationDirection
		steps     int
		want      []int64
		wantErr   bool
	}{
		{name: "up all pending", applied: firstTwo, direction: migrationUp, want: []int64{3}},
		{name: "up limited from scratch", applied: map[int64]time.Time{}, direction: migrationUp, steps: 2, want: []int64{1, 2}},
		{name: "up when current", applied: map[int64]time.Time{1: now, 2: now, 3: now}, direction: migrationUp, want: []int64{}},
		{name: "down newest first", applied: firstTwo, direction: migrationDown, steps: 2, want: []int64{2, 1}},
		{name: "down one", applied: firstTwo, direction: migrationDown, steps: 1, want: []int64{2}},
		{name: "down unknown version", applied: map[int64]time.Time{9: now}, direction: migrationDown, steps: 1, wantErr: true},
		{name: "invalid direction", applied: firstTwo, direction: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planMigrations(all, tt.applied, tt.direction, tt.steps)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			got := make([]int64, 0, len(plan))
			for _, m := range plan {
				got = append(got, m.Version)
			}
			require.Equal(t, tt.want, got)
		})
	}
}
