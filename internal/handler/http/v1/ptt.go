package v1

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shomrim_dispatch/internal/models"
)

// @Summary Broadcast a push-to-talk message
// @Tags PTT
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param audio formData file true "Recorded audio"
// @Param channel formData string false "Channel" default(all)
// @Param user_phone formData string true "Author phone"
// @Param user_name formData string true "Author name"
// @Success 200 {object} PTTBroadcastResponse
// @Failure 400 {object} ErrorResponse "Missing or oversized audio"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /ptt/broadcast [post]
func (h *Handler) broadcastPTT(c *gin.Context) {
	log := h.logger.WithField("method", "broadcastPTT")

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		log.WithError(err).Warn("Audio file missing from request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no audio file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded audio")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	defer file.Close()

	// Читаем на байт больше лимита, чтобы сервис отклонил слишком длинную запись
	reader := io.Reader(file)
	if h.cfg.PTTMaxAudioBytes > 0 {
		reader = io.LimitReader(file, h.cfg.PTTMaxAudioBytes+1)
	}
	audio, err := io.ReadAll(reader)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded audio")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	msg := &models.PTTMessage{
		UserPhone:   c.PostForm("user_phone"),
		UserName:    c.PostForm("user_name"),
		Channel:     c.DefaultPostForm("channel", models.PTTChannelAll),
		Audio:       audio,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}

	id, err := h.pttService.Broadcast(c.Request.Context(), msg)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, PTTBroadcastResponse{
		Success:   true,
		Message:   "Voice message broadcast to channel",
		Channel:   msg.Channel,
		MessageID: id,
	})
}

// @Summary Poll for new push-to-talk messages
// @Description Returns metadata of messages after since_id on the channel or "all", excluding the requester's own.
// @Tags PTT
// @Produce json
// @Security ApiKeyAuth
// @Param user_phone query string false "Requester phone"
// @Param channel query string false "Channel" default(all)
// @Param since_id query int false "Last seen message id" default(0)
// @Success 200 {object} PTTMessagesResponse
// @Failure 400 {object} ErrorResponse "Invalid since_id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /ptt/messages [get]
func (h *Handler) pollPTT(c *gin.Context) {
	log := h.logger.WithField("method", "pollPTT")

	sinceID, err := strconv.ParseInt(c.DefaultQuery("since_id", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid since_id"})
		return
	}

	messages, err := h.pttService.Poll(c.Request.Context(), c.DefaultQuery("channel", models.PTTChannelAll), c.Query("user_phone"), sinceID)
	if err != nil {
		respondError(c, log, err)
		return
	}

	messages = nonNil(messages)
	c.JSON(http.StatusOK, PTTMessagesResponse{Messages: messages, Count: len(messages)})
}

// @Summary Download push-to-talk audio
// @Tags PTT
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param id path int true "Message ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "Message not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /ptt/audio/{id} [get]
func (h *Handler) pttAudio(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "pttAudio").WithField("id", id)

	audio, err := h.pttService.Audio(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=ptt_%d.webm", id))
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, audio.ContentType, audio.Data)
}
