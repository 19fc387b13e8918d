package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/shenikar/shomrim_dispatch/internal/service"
	"gorm.io/gorm"
)

var (
	suspectColumns = []string{
		"name", "alias", "date_of_birth", "physical_description", "photo", "last_known_address",
		"phone", "email", "known_associates", "criminal_history", "notes", "updated_at",
	}
	vehicleColumns = []string{
		"registration", "make", "model", "color", "year", "vin", "owner_name", "owner_address",
		"owner_phone", "status", "assigned_to", "notes", "photo", "updated_at",
	}
)

// DirectoryRepository - контакты, подозреваемые, транспорт и уведомления
type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) service.DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) CreateContact(ctx context.Context, contact *models.Contact) error {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return translateGormError("failed to create contact", err)
	}
	return nil
}

func (r *DirectoryRepository) ListContacts(ctx context.Context, userPhone string) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	err := r.db.WithContext(ctx).Where("user_phone = ?", userPhone).Order("name").Find(&contacts).Error
	if err != nil {
		return nil, translateGormError("failed to list contacts", err)
	}
	return contacts, nil
}

func (r *DirectoryRepository) DeleteContact(ctx context.Context, id int64) error {
	return r.delete(ctx, &models.Contact{}, id, "contact")
}

func (r *DirectoryRepository) ListSuspects(ctx context.Context) ([]models.Suspect, error) {
	suspects := make([]models.Suspect, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&suspects).Error; err != nil {
		return nil, translateGormError("failed to list suspects", err)
	}
	return suspects, nil
}

func (r *DirectoryRepository) CreateSuspect(ctx context.Context, suspect *models.Suspect) error {
	if err := r.db.WithContext(ctx).Create(suspect).Error; err != nil {
		return translateGormError("failed to create suspect", err)
	}
	return nil
}

// UpdateSuspect перезаписывает все поля карточки, кроме автора и даты создания
func (r *DirectoryRepository) UpdateSuspect(ctx context.Context, suspect *models.Suspect) error {
	return r.update(ctx, suspect, suspectColumns, "suspect", suspect.ID)
}

func (r *DirectoryRepository) DeleteSuspect(ctx context.Context, id int64) error {
	return r.delete(ctx, &models.Suspect{}, id, "suspect")
}

func (r *DirectoryRepository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles := make([]models.Vehicle, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&vehicles).Error; err != nil {
		return nil, translateGormError("failed to list vehicles", err)
	}
	return vehicles, nil
}

func (r *DirectoryRepository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return translateGormError("failed to create vehicle", err)
	}
	return nil
}

func (r *DirectoryRepository) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return r.update(ctx, vehicle, vehicleColumns, "vehicle", vehicle.ID)
}

func (r *DirectoryRepository) DeleteVehicle(ctx context.Context, id int64) error {
	return r.delete(ctx, &models.Vehicle{}, id, "vehicle")
}

func (r *DirectoryRepository) ListNotifications(ctx context.Context, userPhone string) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	err := r.db.WithContext(ctx).Where("user_phone = ?", userPhone).Order("created_at DESC, id DESC").Find(&notifications).Error
	if err != nil {
		return nil, translateGormError("failed to list notifications", err)
	}
	return notifications, nil
}

func (r *DirectoryRepository) MarkNotificationRead(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return translateGormError("failed to mark notification read", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification %d not found: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *DirectoryRepository) update(ctx context.Context, values any, columns []string, entity string, id int64) error {
	res := r.db.WithContext(ctx).Model(values).Select(columns).Updates(values)
	if res.Error != nil {
		return translateGormError(fmt.Sprintf("failed to update %s", entity), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d not found: %w", entity, id, models.ErrNotFound)
	}
	return nil
}

func (r *DirectoryRepository) delete(ctx context.Context, model any, id int64, entity string) error {
	res := r.db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return translateGormError(fmt.Sprintf("failed to delete %s", entity), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d not found: %w", entity, id, models.ErrNotFound)
	}
	return nil
}
