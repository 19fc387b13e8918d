package models

import "time"

const (
	// PTTChannelAll - канал, сообщения которого получают все
	PTTChannelAll = "all"
	// PTTDefaultContentType - тип аудио, если клиент его не передал
	PTTDefaultContentType = "audio/webm"
)

// PTTMessage - голосовое сообщение рации
type PTTMessage struct {
	ID          int64
	UserPhone   string
	UserName    string
	Channel     string
	Audio       []byte
	ContentType string
	CreatedAt   time.Time
}

// PTTMessageMeta - сообщение без аудио, отдаётся при опросе
type PTTMessageMeta struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	Channel   string    `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

type PTTAudio struct {
	Data        []byte
	ContentType string
}
