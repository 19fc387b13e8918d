package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// errorStatus сопоставляет класс ошибки с HTTP-статусом и текстом для клиента
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest, validationMessage(err)
	case errors.Is(err, models.ErrExpired):
		return http.StatusBadRequest, "otp has expired"
	case errors.Is(err, models.ErrMismatch):
		return http.StatusBadRequest, "invalid otp"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict, "resource conflicts with existing data"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// validationMessage оставляет от цепочки ошибок только текст после класса "validation failed"
func validationMessage(err error) string {
	prefix := models.ErrValidation.Error()
	_, detail, found := strings.Cut(err.Error(), prefix+": ")
	if !found || detail == "" {
		return prefix
	}
	return detail
}

// respondError пишет ошибку сервиса в ответ. Детали ошибок 500 остаются в логе.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, ErrorResponse{Error: message})
}
