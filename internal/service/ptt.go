package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_ptt.go -package=mocks github.com/shenikar/shomrim_dispatch/internal/service PTTRepository,PTTService

// PTTRepository - хранилище голосовых сообщений рации
type PTTRepository interface {
	Publish(ctx context.Context, msg *models.PTTMessage, retention int) error
	PollSince(ctx context.Context, channel, requesterPhone string, sinceID int64) ([]models.PTTMessageMeta, error)
	FetchAudio(ctx context.Context, id int64) (*models.PTTAudio, error)
}

// PTTService - рация: публикация, опрос по курсору и выдача аудио
type PTTService interface {
	Broadcast(ctx context.Context, msg *models.PTTMessage) (int64, error)
	Poll(ctx context.Context, channel, requesterPhone string, sinceID int64) ([]models.PTTMessageMeta, error)
	Audio(ctx context.Context, id int64) (*models.PTTAudio, error)
}

type PTTConfig struct {
	Retention     int
	MaxAudioBytes int64
}

type pttService struct {
	repo   PTTRepository
	cfg    PTTConfig
	logger *logrus.Logger
}

func NewPTTService(repo PTTRepository, cfg PTTConfig, logger *logrus.Logger) PTTService {
	return &pttService{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// Broadcast сохраняет сообщение и возвращает его id
func (s *pttService) Broadcast(ctx context.Context, msg *models.PTTMessage) (int64, error) {
	if strings.TrimSpace(msg.Channel) == "" {
		msg.Channel = models.PTTChannelAll
	}
	if strings.TrimSpace(msg.ContentType) == "" {
		msg.ContentType = models.PTTDefaultContentType
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "ptt",
		"method":  "Broadcast",
		"channel": msg.Channel,
		"user":    msg.UserName,
		"bytes":   len(msg.Audio),
	})

	switch {
	case strings.TrimSpace(msg.UserPhone) == "":
		return 0, fmt.Errorf("service: could not broadcast: %w", invalid("user_phone is required"))
	case strings.TrimSpace(msg.UserName) == "":
		return 0, fmt.Errorf("service: could not broadcast: %w", invalid("user_name is required"))
	case len(msg.Audio) == 0:
		return 0, fmt.Errorf("service: could not broadcast: %w", invalid("audio is empty"))
	case s.cfg.MaxAudioBytes > 0 && int64(len(msg.Audio)) > s.cfg.MaxAudioBytes:
		return 0, fmt.Errorf("service: could not broadcast: %w", invalid("audio exceeds %d bytes", s.cfg.MaxAudioBytes))
	}

	if err := s.repo.Publish(ctx, msg, s.cfg.Retention); err != nil {
		log.WithError(err).Error("Failed to publish ptt message")
		return 0, fmt.Errorf("service: could not broadcast: %w", err)
	}

	log.WithField("message_id", msg.ID).Info("PTT message broadcast")
	return msg.ID, nil
}

// Poll возвращает сообщения после sinceID, адресованные каналу или всем
func (s *pttService) Poll(ctx context.Context, channel, requesterPhone string, sinceID int64) ([]models.PTTMessageMeta, error) {
	if strings.TrimSpace(channel) == "" {
		channel = models.PTTChannelAll
	}
	if sinceID < 0 {
		sinceID = 0
	}

	messages, err := s.repo.PollSince(ctx, channel, requesterPhone, sinceID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "ptt",
			"method":  "Poll",
			"channel": channel,
		}).WithError(err).Error("Failed to poll ptt messages")
		return nil, fmt.Errorf("service: could not poll messages: %w", err)
	}
	return messages, nil
}

func (s *pttService) Audio(ctx context.Context, id int64) (*models.PTTAudio, error) {
	audio, err := s.repo.FetchAudio(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not fetch audio: %w", err)
	}
	if audio.ContentType == "" {
		audio.ContentType = models.PTTDefaultContentType
	}
	return audio, nil
}
