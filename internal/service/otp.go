package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/shenikar/shomrim_dispatch/internal/otp"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_otp.go -package=mocks github.com/shenikar/shomrim_dispatch/internal/service SMSSender,OTPService

// SMSSender отправляет SMS и возвращает идентификатор сообщения
type SMSSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// OTPService выдаёт и проверяет одноразовые коды входа по номеру телефона
type OTPService interface {
	SendOTP(ctx context.Context, phoneNumber, countryCode string) (*models.OTPDispatch, error)
	VerifyOTP(ctx context.Context, phoneNumber, countryCode, code string) (*models.OTPVerification, error)
}

type OTPConfig struct {
	TTL                time.Duration
	DefaultCountryCode string
	// DevEcho возвращает код в ответе и пишет его в лог, если SMS не доставлено
	DevEcho bool
}

type otpService struct {
	store     otp.Store
	generator otp.Generator
	sms       SMSSender
	users     UserRepository
	cfg       OTPConfig
	logger    *logrus.Logger
}

func NewOTPService(store otp.Store, generator otp.Generator, sms SMSSender, users UserRepository, cfg OTPConfig, logger *logrus.Logger) OTPService {
	return &otpService{
		store:     store,
		generator: generator,
		sms:       sms,
		users:     users,
		cfg:       cfg,
		logger:    logger,
	}
}

// SendOTP выдаёт новый код и пытается отправить его по SMS. Ошибка доставки не считается ошибкой вызова.
func (s *otpService) SendOTP(ctx context.Context, phoneNumber, countryCode string) (*models.OTPDispatch, error) {
	phone, err := s.fullPhone(phoneNumber, countryCode)
	if err != nil {
		return nil, fmt.Errorf("service: could not send otp: %w", err)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "otp",
		"method":  "SendOTP",
		"phone":   phone,
	})

	code, err := s.generator.Generate()
	if err != nil {
		log.WithError(err).Error("Failed to generate otp")
		return nil, fmt.Errorf("service: could not send otp: %w", err)
	}

	if err := s.store.Issue(ctx, phone, code, s.cfg.TTL); err != nil {
		log.WithError(err).Error("Failed to store otp")
		return nil, fmt.Errorf("service: could not send otp: %w", err)
	}

	dispatch := &models.OTPDispatch{Phone: phone}
	body := fmt.Sprintf("Your Shomrim verification code is: %s\n\nThis code will expire in %d minutes.", code, int(s.cfg.TTL.Minutes()))

	sid, err := s.sms.Send(ctx, phone, body)
	if err == nil {
		dispatch.Delivered = true
		dispatch.MessageSID = sid
		log.WithField("sid", sid).Info("OTP delivered")
		return dispatch, nil
	}

	if s.cfg.DevEcho {
		dispatch.DevCode = code
		log.WithError(err).WithField("otp", code).Warn("OTP delivery failed, echoing code (development mode)")
	} else {
		log.WithError(err).Warn("OTP delivery failed")
	}
	return dispatch, nil
}

// VerifyOTP проверяет код и сообщает, зарегистрирован ли уже этот номер
func (s *otpService) VerifyOTP(ctx context.Context, phoneNumber, countryCode, code string) (*models.OTPVerification, error) {
	phone, err := s.fullPhone(phoneNumber, countryCode)
	if err != nil {
		return nil, fmt.Errorf("service: could not verify otp: %w", err)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "otp",
		"method":  "VerifyOTP",
		"phone":   phone,
	})

	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("service: could not verify otp: %w", invalid("otp is required"))
	}

	// Профиль читается до проверки: сбой хранилища не должен сжигать верный код
	result := &models.OTPVerification{Phone: phone}
	user, err := s.users.GetByPhone(ctx, phone)
	switch {
	case err == nil:
		result.ReturningUser = true
		result.User = user
	case errors.Is(err, models.ErrNotFound):
	default:
		log.WithError(err).Error("Failed to look up user for otp verification")
		return nil, fmt.Errorf("service: could not verify otp: %w", err)
	}

	if err := s.store.Verify(ctx, phone, code); err != nil {
		log.WithError(err).Warn("OTP verification failed")
		return nil, fmt.Errorf("service: could not verify otp: %w", err)
	}

	log.WithField("returning_user", result.ReturningUser).Info("OTP verified")
	return result, nil
}

func (s *otpService) fullPhone(phoneNumber, countryCode string) (string, error) {
	number := otp.Normalize(phoneNumber)
	if number == "" {
		return "", invalid("phone_number is required")
	}
	code := otp.Normalize(countryCode)
	if code == "" {
		code = s.cfg.DefaultCountryCode
	}
	return code + number, nil
}
