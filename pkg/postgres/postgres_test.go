package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/shomrim_dispatch/internal/config"
)

func TestPoolConfig(t *testing.T) {
	cfgPool, err := PoolConfig(&config.Config{
		DatabaseURL:       "postgres://u:p@localhost:5432/shomrim?sslmode=disable",
		DBMaxConns:        7,
		DBConnMaxLifetime: 30 * time.Minute,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(7), cfgPool.MaxConns)
	assert.Equal(t, 30*time.Minute, cfgPool.MaxConnLifetime)
	assert.Equal(t, applicationName, cfgPool.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfig_KeepsApplicationNameFromDSN(t *testing.T) {
	cfgPool, err := PoolConfig(&config.Config{
		DatabaseURL: "postgres://u:p@localhost:5432/shomrim?application_name=ops",
	})
	require.NoError(t, err)

	assert.Equal(t, "ops", cfgPool.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfig_InvalidDSN(t *testing.T) {
	_, err := PoolConfig(&config.Config{DatabaseURL: "postgres://u:p@localhost:notaport/db"})
	assert.Error(t, err)
}
