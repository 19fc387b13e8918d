package otp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "+447700900123"

func newTestMemoryStore(t *testing.T) (*MemoryStore, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	return NewMemoryStore(10*time.Minute, testOptions(clock)...), clock
}

func TestMemoryStore_VerifyIsSingleUse(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()
	require.NoError(t, store.Issue(ctx, testPhone, "123456", 5*time.Minute))

	assert.NoError(t, store.Verify(ctx, testPhone, "123456"))
	assert.ErrorIs(t, store.Verify(ctx, testPhone, "123456"), models.ErrNotFound)
}

func TestMemoryStore_VerifyUnknownPhone(t *testing.T) {
	store, _ := newTestMemoryStore(t)

	err := store.Verify(context.Background(), testPhone, "123456")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryStore_ExpiresAfterTTL(t *testing.T) {
	// Подготовка
	store, clock := newTestMemoryStore(t)
	ctx := context.Background()
	require.NoError(t, store.Issue(ctx, testPhone, "123456", 5*time.Minute))

	// Действие
	clock.Advance(5*time.Minute + time.Second)
	err := store.Verify(ctx, testPhone, "123456")

	// Проверки
	assert.ErrorIs(t, err, models.ErrExpired)
	assert.ErrorIs(t, store.Verify(ctx, testPhone, "123456"), models.ErrNotFound)
}

func TestMemoryStore_ValidAtExactExpiry(t *testing.T) {
	store, clock := newTestMemoryStore(t)
	ctx := context.Background()
	require.NoError(t, store.Issue(ctx, testPhone, "123456", 5*time.Minute))

	clock.Advance(5 * time.Minute)

	assert.NoError(t, store.Verify(ctx, testPhone, "123456"))
}

func TestMemoryStore_MismatchKeepsChallenge(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()
	require.NoError(t, store.Issue(ctx, testPhone, "123456", 5*time.Minute))

	assert.ErrorIs(t, store.Verify(ctx, testPhone, "654321"), models.ErrMismatch)
	assert.ErrorIs(t, store.Verify(ctx, testPhone, ""), models.ErrMismatch)
	assert.NoError(t, store.Verify(ctx, testPhone, "123456"))
}

func TestMemoryStore_ReissueReplacesPending(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Issue(ctx, testPhone, "111111", 5*time.Minute))
	require.NoError(t, store.Issue(ctx, testPhone, "222222", 5*time.Minute))

	assert.ErrorIs(t, store.Verify(ctx, testPhone, "111111"), models.ErrMismatch)
	assert.NoError(t, store.Verify(ctx, testPhone, "222222"))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_ReissueRestartsExpiry(t *testing.T) {
	store, clock := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Issue(ctx, testPhone, "123456", 5*time.Minute))
	clock.Advance(4 * time.Minute)
	require.NoError(t, store.Issue(ctx, testPhone, "123456", 5*time.Minute))
	clock.Advance(4 * time.Minute)

	assert.NoError(t, store.Verify(ctx, testPhone, "123456"))
}

func TestMemoryStore_IgnoresWhitespace(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"surrounding", "  123456 \n"},
		{"inner", "123 456"},
		{"tabs", "12\t34\t56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestMemoryStore(t)
			ctx := context.Background()
			require.NoError(t, store.Issue(ctx, testPhone, "123456", 5*time.Minute))

			assert.NoError(t, store.Verify(ctx, testPhone, tt.code))
		})
	}
}

func TestMemoryStore_PhonesAreIndependent(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()
	require.NoError(t, store.Issue(ctx, "+441", "111111", 5*time.Minute))
	require.NoError(t, store.Issue(ctx, "+442", "222222", 5*time.Minute))

	assert.ErrorIs(t, store.Verify(ctx, "+441", "222222"), models.ErrMismatch)
	assert.NoError(t, store.Verify(ctx, "+442", "222222"))
	assert.NoError(t, store.Verify(ctx, "+441", "111111"))
}

func TestMemoryStore_ConcurrentVerifySucceedsOnce(t *testing.T) {
	// Подготовка
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()
	require.NoError(t, store.Issue(ctx, testPhone, "123456", 5*time.Minute))

	// Действие
	const workers = 16
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Verify(ctx, testPhone, "123456")
		}()
	}
	wg.Wait()
	close(results)

	// Проверки
	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, models.ErrNotFound)
	}
	assert.Equal(t, 1, succeeded)
}

func TestMemoryStore_SweepHonoursGrace(t *testing.T) {
	// Подготовка
	store, clock := newTestMemoryStore(t)
	ctx := context.Background()
	require.NoError(t, store.Issue(ctx, "+441", "111111", time.Minute))
	require.NoError(t, store.Issue(ctx, "+442", "222222", time.Hour))

	// Действие и проверки
	clock.Advance(5 * time.Minute)
	removed, err := store.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.ErrorIs(t, store.Verify(ctx, "+441", "111111"), models.ErrExpired)

	require.NoError(t, store.Issue(ctx, "+443", "333333", time.Minute))
	clock.Advance(12 * time.Minute)
	removed, err = store.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
	assert.ErrorIs(t, store.Verify(ctx, "+443", "333333"), models.ErrNotFound)
}
