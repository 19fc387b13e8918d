package postgres

import (
	"io/fs"
	"testing"

	"github.com/shenikar/shomrim_dispatch/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/shomrim?sslmode=disable", "pgx5://u:p@localhost:5432/shomrim?sslmode=disable"},
		{"postgresql://u@db/shomrim", "pgx5://u@db/shomrim"},
		{"pgx5://u@db/shomrim", "pgx5://u@db/shomrim"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MigrationURL(tt.in))
	}
}

func TestEmbeddedMigrations_UpAndDownPaired(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations.FS, "*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Equal(t, len(ups), len(downs))
}

func TestEmbeddedMigrations_CreatePTTIndex(t *testing.T) {
	data, err := fs.ReadFile(migrations.FS, "000001_init_schema.up.sql")
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, "CREATE INDEX IF NOT EXISTS idx_ptt_created_at ON ptt_messages(created_at DESC)")
	for _, table := range []string{
		"users", "incidents", "incident_participants", "incident_assignments", "incident_notes",
		"incident_history", "incident_police_info", "incident_arrests", "contacts", "notifications",
		"suspects", "vehicles", "ptt_messages",
	} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
