package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/shenikar/shomrim_dispatch/internal/service"
)

// pttPublishLockKey - ключ advisory-блокировки, сериализующей публикацию и очистку сообщений
const pttPublishLockKey int64 = 0x5054545f

type PTTRepository struct {
	gw *Gateway
}

func NewPTTRepository(gw *Gateway) service.PTTRepository {
	return &PTTRepository{gw: gw}
}

// Publish сохраняет сообщение и оставляет только retention последних по id.
// Вставка и очистка выполняются в одной транзакции под общей блокировкой.
func (r *PTTRepository) Publish(ctx context.Context, msg *models.PTTMessage, retention int) error {
	return r.gw.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1);", pttPublishLockKey); err != nil {
			return translateError("failed to acquire ptt publish lock", err)
		}

		query := `
			INSERT INTO ptt_messages (user_phone, user_name, channel, audio_data, content_type)
			VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
		`
		err := tx.QueryRow(ctx, query,
			msg.UserPhone,
			msg.UserName,
			msg.Channel,
			msg.Audio,
			msg.ContentType,
		).Scan(&msg.ID, &msg.CreatedAt)
		if err != nil {
			return translateError("failed to insert ptt message", err)
		}

		// Подзапрос возвращает id сообщения, следующего за последними retention; если сообщений меньше, он пуст
		prune := `
			DELETE FROM ptt_messages
			WHERE id <= (SELECT id FROM ptt_messages ORDER BY id DESC OFFSET $1 LIMIT 1);
		`
		if _, err := tx.Exec(ctx, prune, retention); err != nil {
			return translateError("failed to prune ptt messages", err)
		}
		return nil
	})
}

// PollSince возвращает метаданные сообщений после sinceID для канала, кроме собственных сообщений запрашивающего
func (r *PTTRepository) PollSince(ctx context.Context, channel, requesterPhone string, sinceID int64) ([]models.PTTMessageMeta, error) {
	query := `
		SELECT id, user_name, channel, created_at
		FROM ptt_messages
		WHERE id > $1
			AND user_phone IS DISTINCT FROM $2
			AND (channel = $3 OR channel = $4)
		ORDER BY id;
	`
	rows, err := r.gw.Pool().Query(ctx, query, sinceID, requesterPhone, channel, models.PTTChannelAll)
	if err != nil {
		return nil, translateError("failed to poll ptt messages", err)
	}
	messages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PTTMessageMeta, error) {
		var m models.PTTMessageMeta
		err := row.Scan(&m.ID, &m.UserName, &m.Channel, &m.Timestamp)
		return m, err
	})
	if err != nil {
		return nil, translateError("failed to scan ptt message row", err)
	}
	return messages, nil
}

// FetchAudio возвращает аудио сообщения
func (r *PTTRepository) FetchAudio(ctx context.Context, id int64) (*models.PTTAudio, error) {
	audio := &models.PTTAudio{}
	err := r.gw.Pool().QueryRow(ctx, "SELECT audio_data, content_type FROM ptt_messages WHERE id = $1;", id).
		Scan(&audio.Data, &audio.ContentType)
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to fetch ptt message %d", id), err)
	}
	return audio, nil
}
