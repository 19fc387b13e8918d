package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/shenikar/shomrim_dispatch/internal/service"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) service.UserRepository {
	return &UserRepository{db: db}
}

// Upsert создаёт участника или обновляет его профиль. Флаги дежурства и патруля не трогаются.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "callsign", "role", "avatar"}),
	}).Create(user).Error
	if err != nil {
		return translateGormError("failed to upsert user", err)
	}
	return nil
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(user).Error; err != nil {
		return nil, translateGormError(fmt.Sprintf("failed to get user %s", phone), err)
	}
	return user, nil
}

func (r *UserRepository) SetOnDuty(ctx context.Context, phone string, onDuty bool) error {
	return r.setFlag(ctx, phone, "on_duty", onDuty)
}

func (r *UserRepository) SetOnPatrol(ctx context.Context, phone string, onPatrol bool) error {
	return r.setFlag(ctx, phone, "on_patrol", onPatrol)
}

func (r *UserRepository) setFlag(ctx context.Context, phone, column string, value bool) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("phone = ?", phone).Update(column, value)
	if res.Error != nil {
		return translateGormError(fmt.Sprintf("failed to set %s", column), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s not found: %w", phone, models.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) ListOnDuty(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, "on_duty = ?", true)
}

func (r *UserRepository) ListOnPatrol(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, "on_patrol = ?", true)
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return r.list(ctx, "role = ?", role)
}

func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.WithContext(ctx).Order("name").Find(&users).Error; err != nil {
		return nil, translateGormError("failed to list users", err)
	}
	return users, nil
}

func (r *UserRepository) list(ctx context.Context, query string, arg any) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.WithContext(ctx).Where(query, arg).Order("name").Find(&users).Error; err != nil {
		return nil, translateGormError("failed to list users", err)
	}
	return users, nil
}
