// Package otp хранит одноразовые коды подтверждения телефона.
//
// Код хранится только в виде bcrypt-хэша. Для каждого номера в любой момент
// существует не более одного ожидающего кода: повторная выдача заменяет предыдущий.
package otp

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Store - хранилище ожидающих кодов
type Store interface {
	// Issue сохраняет код для номера, заменяя ожидающий
	Issue(ctx context.Context, phone, code string, ttl time.Duration) error
	// Verify проверяет код. Ошибки: models.ErrNotFound, models.ErrExpired, models.ErrMismatch
	Verify(ctx context.Context, phone, code string) error
	// Sweep удаляет давно истёкшие коды и возвращает их количество
	Sweep(ctx context.Context) (int, error)
}

type Option func(*settings)

type settings struct {
	hashCost int
	now      func() time.Time
}

func defaultSettings() settings {
	return settings{hashCost: bcrypt.DefaultCost, now: time.Now}
}

// WithHashCost задаёт стоимость bcrypt
func WithHashCost(cost int) Option {
	return func(s *settings) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.hashCost = cost
		}
	}
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// Normalize убирает из кода все пробельные символы
func Normalize(code string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, code)
}

func hashCode(code string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(Normalize(code)), cost)
}

func codeMatches(hash []byte, code string) bool {
	normalized := Normalize(code)
	if normalized == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(normalized)) == nil
}
