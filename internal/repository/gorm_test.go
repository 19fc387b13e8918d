package repository

import (
	"errors"
	"testing"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// каждое новое соединение к :memory: получает свою пустую базу
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Notification{},
		&models.Suspect{},
		&models.Vehicle{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestTranslateGormError(t *testing.T) {
	assert.NoError(t, translateGormError("op", nil))
	assert.ErrorIs(t, translateGormError("op", gorm.ErrRecordNotFound), models.ErrNotFound)
	assert.ErrorIs(t, translateGormError("op", gorm.ErrDuplicatedKey), models.ErrConflict)
	assert.ErrorIs(t, translateGormError("op", gorm.ErrForeignKeyViolated), models.ErrConflict)
	assert.ErrorIs(t, translateGormError("op", errors.New("disk I/O error")), models.ErrStorage)
}
