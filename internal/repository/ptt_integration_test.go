//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishTestMessage(t *testing.T, repo interface {
	Publish(ctx context.Context, msg *models.PTTMessage, retention int) error
}, phone, channel string, retention int) int64 {
	t.Helper()
	msg := &models.PTTMessage{
		UserPhone:   phone,
		UserName:    "user " + phone,
		Channel:     channel,
		Audio:       []byte("audio-" + phone),
		ContentType: models.PTTDefaultContentType,
	}
	require.NoError(t, repo.Publish(context.Background(), msg, retention))
	return msg.ID
}

func TestPTTRepository_RetentionKeepsNewest(t *testing.T) {
	// Подготовка
	pool := openIntegrationPool(t)
	repo := NewPTTRepository(NewGateway(pool))
	ctx := context.Background()

	// Действие
	ids := make([]int64, 0, 60)
	for i := 0; i < 60; i++ {
		ids = append(ids, publishTestMessage(t, repo, fmt.Sprintf("+44%d", i), models.PTTChannelAll, 50))
	}

	// Проверки
	var count int
	var minID int64
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*), MIN(id) FROM ptt_messages").Scan(&count, &minID))
	assert.Equal(t, 50, count)
	assert.Equal(t, ids[10], minID)

	_, err := repo.FetchAudio(ctx, ids[0])
	assert.ErrorIs(t, err, models.ErrNotFound)

	audio, err := repo.FetchAudio(ctx, ids[59])
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-+4459"), audio.Data)
	assert.Equal(t, models.PTTDefaultContentType, audio.ContentType)
}

func TestPTTRepository_PollSinceFilters(t *testing.T) {
	// Подготовка
	repo := NewPTTRepository(NewGateway(openIntegrationPool(t)))
	ctx := context.Background()

	first := publishTestMessage(t, repo, "+441", "dispatchers", 50)
	publishTestMessage(t, repo, "+442", "on-patrol", 50)
	third := publishTestMessage(t, repo, "+443", models.PTTChannelAll, 50)
	publishTestMessage(t, repo, "+449", "dispatchers", 50)
	fifth := publishTestMessage(t, repo, "+442", "dispatchers", 50)

	// Действие
	messages, err := repo.PollSince(ctx, "dispatchers", "+449", 0)
	require.NoError(t, err)
	later, err := repo.PollSince(ctx, "dispatchers", "+449", third)
	require.NoError(t, err)
	none, err := repo.PollSince(ctx, "dispatchers", "+449", fifth)
	require.NoError(t, err)

	// Проверки
	require.Len(t, messages, 3)
	assert.Equal(t, []int64{first, third, fifth}, []int64{messages[0].ID, messages[1].ID, messages[2].ID})
	assert.Equal(t, models.PTTChannelAll, messages[1].Channel)
	require.Len(t, later, 1)
	assert.Equal(t, fifth, later[0].ID)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
