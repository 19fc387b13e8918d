package otp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/shomrim_dispatch/internal/models"
)

type challenge struct {
	hash      []byte
	expiresAt time.Time
}

// MemoryStore - хранилище кодов в памяти процесса. Коды теряются при перезапуске.
type MemoryStore struct {
	mu         sync.Mutex
	challenges map[string]challenge
	locks      *keyedMutex
	grace      time.Duration
	settings
}

// NewMemoryStore создает хранилище. grace - сколько хранить истёкший код до удаления сборщиком.
func NewMemoryStore(grace time.Duration, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		challenges: make(map[string]challenge),
		locks:      newKeyedMutex(),
		grace:      grace,
		settings:   defaultSettings(),
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

func (s *MemoryStore) Issue(ctx context.Context, phone, code string, ttl time.Duration) error {
	unlock := s.locks.Lock(phone)
	defer unlock()

	hash, err := hashCode(code, s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash otp: %w", err)
	}

	s.mu.Lock()
	s.challenges[phone] = challenge{hash: hash, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Verify(ctx context.Context, phone, code string) error {
	unlock := s.locks.Lock(phone)
	defer unlock()

	s.mu.Lock()
	c, ok := s.challenges[phone]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("no otp for %s: %w", phone, models.ErrNotFound)
	}

	if s.now().After(c.expiresAt) {
		s.remove(phone)
		return fmt.Errorf("otp for %s: %w", phone, models.ErrExpired)
	}

	if !codeMatches(c.hash, code) {
		return fmt.Errorf("otp for %s: %w", phone, models.ErrMismatch)
	}

	s.remove(phone)
	return nil
}

func (s *MemoryStore) Sweep(ctx context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for phone, c := range s.challenges {
		if now.After(c.expiresAt.Add(s.grace)) {
			delete(s.challenges, phone)
			removed++
		}
	}
	return removed, nil
}

// Len возвращает количество хранимых кодов
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.challenges)
}

func (s *MemoryStore) remove(phone string) {
	s.mu.Lock()
	delete(s.challenges, phone)
	s.mu.Unlock()
}
