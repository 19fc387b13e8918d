package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_directory.go -package=mocks github.com/shenikar/shomrim_dispatch/internal/service DirectoryRepository,DirectoryService

// DirectoryRepository - справочники: контакты, подозреваемые, транспорт, уведомления
type DirectoryRepository interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	ListContacts(ctx context.Context, userPhone string) ([]models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error

	ListSuspects(ctx context.Context) ([]models.Suspect, error)
	CreateSuspect(ctx context.Context, suspect *models.Suspect) error
	UpdateSuspect(ctx context.Context, suspect *models.Suspect) error
	DeleteSuspect(ctx context.Context, id int64) error

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error

	ListNotifications(ctx context.Context, userPhone string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

type DirectoryService interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	ListContacts(ctx context.Context, userPhone string) ([]models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error

	ListSuspects(ctx context.Context) ([]models.Suspect, error)
	CreateSuspect(ctx context.Context, suspect *models.Suspect) error
	UpdateSuspect(ctx context.Context, suspect *models.Suspect) error
	DeleteSuspect(ctx context.Context, id int64) error

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error

	ListNotifications(ctx context.Context, userPhone string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

type directoryService struct {
	repo   DirectoryRepository
	logger *logrus.Logger
}

func NewDirectoryService(repo DirectoryRepository, logger *logrus.Logger) DirectoryService {
	return &directoryService{
		repo:   repo,
		logger: logger,
	}
}

func (s *directoryService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "directory",
		"method":  method,
	})
}

func (s *directoryService) CreateContact(ctx context.Context, contact *models.Contact) error {
	if strings.TrimSpace(contact.Name) == "" {
		return fmt.Errorf("service: could not create contact: %w", invalid("name is required"))
	}
	if strings.TrimSpace(contact.UserPhone) == "" {
		return fmt.Errorf("service: could not create contact: %w", invalid("user_phone is required"))
	}
	if err := s.repo.CreateContact(ctx, contact); err != nil {
		s.log("CreateContact").WithError(err).Error("Failed to create contact")
		return fmt.Errorf("service: could not create contact: %w", err)
	}
	return nil
}

func (s *directoryService) ListContacts(ctx context.Context, userPhone string) ([]models.Contact, error) {
	if strings.TrimSpace(userPhone) == "" {
		return nil, fmt.Errorf("service: could not list contacts: %w", invalid("user_phone is required"))
	}
	contacts, err := s.repo.ListContacts(ctx, userPhone)
	if err != nil {
		return nil, fmt.Errorf("service: could not list contacts: %w", err)
	}
	return contacts, nil
}

func (s *directoryService) DeleteContact(ctx context.Context, id int64) error {
	if err := s.repo.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete contact: %w", err)
	}
	return nil
}

func (s *directoryService) ListSuspects(ctx context.Context) ([]models.Suspect, error) {
	suspects, err := s.repo.ListSuspects(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list suspects: %w", err)
	}
	return suspects, nil
}

func (s *directoryService) CreateSuspect(ctx context.Context, suspect *models.Suspect) error {
	if strings.TrimSpace(suspect.Name) == "" {
		return fmt.Errorf("service: could not create suspect: %w", invalid("name is required"))
	}
	if err := s.repo.CreateSuspect(ctx, suspect); err != nil {
		s.log("CreateSuspect").WithError(err).Error("Failed to create suspect")
		return fmt.Errorf("service: could not create suspect: %w", err)
	}
	return nil
}

func (s *directoryService) UpdateSuspect(ctx context.Context, suspect *models.Suspect) error {
	if strings.TrimSpace(suspect.Name) == "" {
		return fmt.Errorf("service: could not update suspect: %w", invalid("name is required"))
	}
	if err := s.repo.UpdateSuspect(ctx, suspect); err != nil {
		s.log("UpdateSuspect").WithError(err).Warn("Failed to update suspect")
		return fmt.Errorf("service: could not update suspect: %w", err)
	}
	return nil
}

func (s *directoryService) DeleteSuspect(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSuspect(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete suspect: %w", err)
	}
	return nil
}

func (s *directoryService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.repo.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *directoryService) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if err := prepareVehicle(vehicle); err != nil {
		return fmt.Errorf("service: could not create vehicle: %w", err)
	}
	if err := s.repo.CreateVehicle(ctx, vehicle); err != nil {
		s.log("CreateVehicle").WithError(err).Error("Failed to create vehicle")
		return fmt.Errorf("service: could not create vehicle: %w", err)
	}
	return nil
}

func (s *directoryService) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if err := prepareVehicle(vehicle); err != nil {
		return fmt.Errorf("service: could not update vehicle: %w", err)
	}
	if err := s.repo.UpdateVehicle(ctx, vehicle); err != nil {
		s.log("UpdateVehicle").WithError(err).Warn("Failed to update vehicle")
		return fmt.Errorf("service: could not update vehicle: %w", err)
	}
	return nil
}

func (s *directoryService) DeleteVehicle(ctx context.Context, id int64) error {
	if err := s.repo.DeleteVehicle(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete vehicle: %w", err)
	}
	return nil
}

func (s *directoryService) ListNotifications(ctx context.Context, userPhone string) ([]models.Notification, error) {
	notifications, err := s.repo.ListNotifications(ctx, userPhone)
	if err != nil {
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return notifications, nil
}

func (s *directoryService) MarkNotificationRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkNotificationRead(ctx, id); err != nil {
		return fmt.Errorf("service: could not mark notification read: %w", err)
	}
	return nil
}

func prepareVehicle(vehicle *models.Vehicle) error {
	if strings.TrimSpace(vehicle.Registration) == "" {
		return invalid("registration is required")
	}
	if strings.TrimSpace(vehicle.Status) == "" {
		vehicle.Status = models.VehicleStatusActive
	}
	return nil
}
