package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_users.go -package=mocks github.com/shenikar/shomrim_dispatch/internal/service UserRepository,UserService

// UserRepository - хранилище участников группы
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	SetOnDuty(ctx context.Context, phone string, onDuty bool) error
	SetOnPatrol(ctx context.Context, phone string, onPatrol bool) error
	ListOnDuty(ctx context.Context) ([]models.User, error)
	ListOnPatrol(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
}

// Каналы рации, для которых список собеседников фильтруется
const (
	ChannelDispatchers  = "dispatchers"
	ChannelCoordinators = "coordinators"
	ChannelOnDuty       = "on-duty"
	ChannelOnPatrol     = "on-patrol"
)

type UserService interface {
	SaveUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, phone string) (*models.User, error)
	SetDutyStatus(ctx context.Context, phone string, onDuty bool) error
	SetPatrolStatus(ctx context.Context, phone string, onPatrol bool) error
	ListOnDuty(ctx context.Context) ([]models.User, error)
	ListOnPatrol(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	ListOnline(ctx context.Context, channel string) ([]models.OnlineUser, error)
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// SaveUser создает участника или обновляет профиль существующего
func (s *userService) SaveUser(ctx context.Context, user *models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "SaveUser",
		"phone":   user.Phone,
	})

	if strings.TrimSpace(user.Phone) == "" {
		return fmt.Errorf("service: could not save user: %w", invalid("phone is required"))
	}
	if strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("service: could not save user: %w", invalid("name is required"))
	}
	if strings.TrimSpace(user.Role) == "" {
		user.Role = models.DefaultRole
	}

	if err := s.repo.Upsert(ctx, user); err != nil {
		log.WithError(err).Error("Failed to save user in repository")
		return fmt.Errorf("service: could not save user: %w", err)
	}

	log.Info("User saved successfully")
	return nil
}

func (s *userService) GetUser(ctx context.Context, phone string) (*models.User, error) {
	user, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

func (s *userService) SetDutyStatus(ctx context.Context, phone string, onDuty bool) error {
	if err := s.repo.SetOnDuty(ctx, phone, onDuty); err != nil {
		s.logger.WithFields(logrus.Fields{"service": "user", "method": "SetDutyStatus", "phone": phone}).
			WithError(err).Warn("Failed to set duty status")
		return fmt.Errorf("service: could not set duty status: %w", err)
	}
	return nil
}

func (s *userService) SetPatrolStatus(ctx context.Context, phone string, onPatrol bool) error {
	if err := s.repo.SetOnPatrol(ctx, phone, onPatrol); err != nil {
		s.logger.WithFields(logrus.Fields{"service": "user", "method": "SetPatrolStatus", "phone": phone}).
			WithError(err).Warn("Failed to set patrol status")
		return fmt.Errorf("service: could not set patrol status: %w", err)
	}
	return nil
}

func (s *userService) ListOnDuty(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListOnDuty(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list on-duty users: %w", err)
	}
	return users, nil
}

func (s *userService) ListOnPatrol(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListOnPatrol(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list on-patrol users: %w", err)
	}
	return users, nil
}

func (s *userService) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	users, err := s.repo.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("service: could not list users by role: %w", err)
	}
	return users, nil
}

// ListOnline возвращает собеседников для канала рации
func (s *userService) ListOnline(ctx context.Context, channel string) ([]models.OnlineUser, error) {
	var (
		users []models.User
		err   error
	)
	switch channel {
	case ChannelDispatchers:
		users, err = s.repo.ListByRole(ctx, "Dispatcher")
	case ChannelCoordinators:
		users, err = s.repo.ListByRole(ctx, "Coordinator")
	case ChannelOnDuty:
		users, err = s.repo.ListOnDuty(ctx)
	case ChannelOnPatrol:
		users, err = s.repo.ListOnPatrol(ctx)
	default:
		users, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "user", "method": "ListOnline", "channel": channel}).
			WithError(err).Error("Failed to list online users")
		return nil, fmt.Errorf("service: could not list online users: %w", err)
	}

	online := make([]models.OnlineUser, 0, len(users))
	for _, u := range users {
		online = append(online, toOnlineUser(u))
	}
	return online, nil
}

func toOnlineUser(u models.User) models.OnlineUser {
	entry := models.OnlineUser{
		Name:     u.Name,
		Phone:    u.Phone,
		Callsign: "N/A",
		Status:   u.Role,
	}
	if entry.Name == "" {
		entry.Name = "Unknown"
	}
	switch {
	case u.Callsign != nil && *u.Callsign != "":
		entry.Callsign = *u.Callsign
	case len(u.Phone) >= 4:
		entry.Callsign = u.Phone[len(u.Phone)-4:]
	case u.Phone != "":
		entry.Callsign = u.Phone
	}
	if entry.Status == "" {
		entry.Status = models.DefaultRole
	}
	return entry
}
