package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
)

// Типы событий инцидента
const (
	EventIncidentCreated   = "incident.created"
	EventIncidentUpdated   = "incident.updated"
	EventIncidentNoteAdded = "incident.note_added"
	EventIncidentAssigned  = "incident.assigned"
)

// WebhookEvent - событие, отправляемое внешнему получателю
type WebhookEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	IncidentID string    `json:"incident_id"`
	Shcad      string    `json:"shcad,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Data       any       `json:"data,omitempty"`
}

// NewIncidentEvent создает событие с новым идентификатором и текущим временем
func NewIncidentEvent(eventType, incidentID string, data any) WebhookEvent {
	return WebhookEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		IncidentID: incidentID,
		Timestamp:  time.Now().UTC(),
		Data:       data,
	}
}

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks github.com/shenikar/shomrim_dispatch/internal/webhook WebhookPublisher

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NoopPublisher отбрасывает события, когда получатель вебхуков не настроен
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	return nil
}
