//go:build integration

package repository

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/shomrim_dispatch/pkg/postgres"
	"github.com/sirupsen/logrus"
)

// openIntegrationPool подключается к TEST_DATABASE_URL, применяет миграции и очищает таблицы
func openIntegrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("postgres unavailable: %v", err)
	}
	t.Cleanup(pool.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	if err := postgres.RunMigrations(dsn, log); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	_, err = pool.Exec(ctx, `TRUNCATE incidents, incident_participants, incident_assignments, incident_notes,
		incident_history, incident_police_info, incident_arrests, notifications, ptt_messages RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}
