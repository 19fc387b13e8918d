// Package notifier отправляет SMS через REST API Twilio.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// ErrNotConfigured возвращается, если учётные данные SMS-шлюза не заданы
var ErrNotConfigured = errors.New("sms gateway is not configured")

// TwilioConfig - учётные данные и адрес API
type TwilioConfig struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	From       string
	Timeout    time.Duration
}

type twilioMessage struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// TwilioClient отправляет сообщения через Messages API. Повторов нет: решение о них принимает вызывающий.
type TwilioClient struct {
	httpClient *resty.Client
	cfg        TwilioConfig
	logger     *logrus.Logger
}

func NewTwilioClient(cfg TwilioConfig, logger *logrus.Logger) *TwilioClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken).
		SetHeader("Accept", "application/json")

	return &TwilioClient{
		httpClient: client,
		cfg:        cfg,
		logger:     logger,
	}
}

// Send отправляет SMS и возвращает SID сообщения
func (c *TwilioClient) Send(ctx context.Context, to, body string) (string, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "twilio",
		"to":        to,
	})

	var message twilioMessage
	var apiErr twilioError
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("sid", c.cfg.AccountSID).
		SetFormData(map[string]string{
			"To":   to,
			"From": c.cfg.From,
			"Body": body,
		}).
		SetResult(&message).
		SetError(&apiErr).
		Post("/2010-04-01/Accounts/{sid}/Messages.json")
	if err != nil {
		log.WithError(err).Warn("SMS gateway call failed")
		return "", fmt.Errorf("failed to call sms gateway: %w", err)
	}

	if resp.IsError() {
		log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode(),
			"error_code":  apiErr.Code,
		}).Warn("SMS gateway rejected message")
		return "", fmt.Errorf("sms gateway error: %s (status: %d)", apiErr.Message, resp.StatusCode())
	}

	log.WithField("sid", message.SID).Info("SMS sent successfully")
	return message.SID, nil
}

// Unconfigured - заглушка для окружений без SMS-шлюза
type Unconfigured struct{}

func (Unconfigured) Send(ctx context.Context, to, body string) (string, error) {
	return "", ErrNotConfigured
}
