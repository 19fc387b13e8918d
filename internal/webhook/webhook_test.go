package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/shomrim_dispatch/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func newTestWorker(t *testing.T, client *redis.Client, url string) (*WebhookWorker, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(client, logger, cfg), buf
}

func TestRedisWebhookPublisher_Publish(t *testing.T) {
	// Подготовка
	mr, client := newTestRedis(t)
	publisher := NewRedisWebhookPublisher(client)
	event := NewIncidentEvent(EventIncidentCreated, "inc-1", map[string]string{"title": "Break-in"})

	// Действие
	err := publisher.Publish(context.Background(), event)

	// Проверки
	require.NoError(t, err)
	items, err := mr.List(webhookQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, EventIncidentCreated, got.Type)
	assert.Equal(t, "inc-1", got.IncidentID)
}

func TestNewIncidentEvent_UniqueIDs(t *testing.T) {
	a := NewIncidentEvent(EventIncidentUpdated, "inc-1", nil)
	b := NewIncidentEvent(EventIncidentUpdated, "inc-1", nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}

func TestWebhookWorker_DeliversSignedPayload(t *testing.T) {
	// Подготовка
	var gotSignature, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	_, client := newTestRedis(t)
	worker, _ := newTestWorker(t, client, server.URL)
	payload := `{"id":"e1","type":"incident.created","incident_id":"inc-1"}`

	// Действие
	ok := worker.processWebhookEvent(context.Background(), WebhookEvent{ID: "e1"}, payload)

	// Проверки
	assert.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestWebhookWorker_RetriesThenGivesUp(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, client := newTestRedis(t)
	worker, buf := newTestWorker(t, client, server.URL)

	ok := worker.processWebhookEvent(context.Background(), WebhookEvent{ID: "e1"}, `{}`)

	assert.False(t, ok)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Contains(t, buf.String(), "Failed to deliver webhook for event after 3 retries.")
}

func TestWebhookWorker_RetrySucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, client := newTestRedis(t)
	worker, _ := newTestWorker(t, client, server.URL)

	assert.True(t, worker.processWebhookEvent(context.Background(), WebhookEvent{ID: "e1"}, `{}`))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestWebhookWorker_SkipsWithoutURL(t *testing.T) {
	_, client := newTestRedis(t)
	worker, buf := newTestWorker(t, client, "")

	assert.False(t, worker.processWebhookEvent(context.Background(), WebhookEvent{ID: "e1"}, `{}`))
	assert.Contains(t, buf.String(), "Webhook URL is not configured")
}

func TestWebhookWorker_StartDrainsQueue(t *testing.T) {
	// Подготовка
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, client := newTestRedis(t)
	worker, _ := newTestWorker(t, client, server.URL)
	event := NewIncidentEvent(EventIncidentNoteAdded, "inc-7", nil)
	require.NoError(t, NewRedisWebhookPublisher(client).Publish(context.Background(), event))

	ctx, cancel := context.WithCancel(context.Background())

	// Действие
	worker.Start(ctx)

	// Проверки
	select {
	case body := <-received:
		assert.Contains(t, body, event.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	cancel()
	select {
	case <-worker.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("worker did not stop")
	}
}
