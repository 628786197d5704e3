//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"storefront-checkout/internal/domain/checkout"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startedAt = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func TestSession_Update(t *testing.T) {
	t.Run("valid content moves idle to pending and back", func(t *testing.T) {
		s := checkout.NewSession()
		assert.Equal(t, checkout.StateIdle, s.State())

		rev := s.Update(checkout.Snapshot{}, true)
		assert.Equal(t, checkout.StatePending, s.State())
		assert.True(t, s.DueAt(rev))

		s.Update(checkout.Snapshot{}, false)
		assert.Equal(t, checkout.StateIdle, s.State())
		assert.False(t, s.DueAt(rev))
	})

	t.Run("a newer revision invalidates the earlier timer", func(t *testing.T) {
		s := checkout.NewSession()
		first := s.Update(checkout.Snapshot{}, true)
		second := s.Update(checkout.Snapshot{}, true)

		assert.False(t, s.DueAt(first))
		assert.True(t, s.DueAt(second))
	})

	t.Run("started session keeps its state", func(t *testing.T) {
		s := checkout.NewSession()
		s.Update(checkout.Snapshot{}, true)
		require.True(t, s.MarkStarted(uuid.New(), startedAt))

		rev := s.Update(checkout.Snapshot{}, false)
		assert.Equal(t, checkout.StateStarted, s.State())
		assert.False(t, s.DueAt(rev))
	})
}

func TestSession_MarkStarted(t *testing.T) {
	s := checkout.NewSession()
	s.Update(checkout.Snapshot{}, true)
	id := uuid.New()

	assert.True(t, s.MarkStarted(id, startedAt))
	assert.False(t, s.MarkStarted(uuid.New(), startedAt), "second emission path must lose")
	assert.Equal(t, id, s.ID())
	assert.Equal(t, startedAt, s.StartedAt())
	assert.False(t, s.CanForce(true))
}

func TestSession_Complete(t *testing.T) {
	t.Run("completion requires a started session", func(t *testing.T) {
		s := checkout.NewSession()
		s.Update(checkout.Snapshot{}, true)

		_, ok := s.Complete()
		assert.False(t, ok)
		assert.Equal(t, checkout.StatePending, s.State())
	})

	t.Run("completion returns the started id and clears it", func(t *testing.T) {
		s := checkout.NewSession()
		s.Update(checkout.Snapshot{}, true)
		id := uuid.New()
		require.True(t, s.MarkStarted(id, startedAt))

		got, ok := s.Complete()
		require.True(t, ok)
		assert.Equal(t, id, got)
		assert.Equal(t, uuid.Nil, s.ID())
		assert.Equal(t, checkout.StateCompleted, s.State())

		_, ok = s.Complete()
		assert.False(t, ok)
	})

	t.Run("a new attempt after completion can start again", func(t *testing.T) {
		s := checkout.NewSession()
		s.Update(checkout.Snapshot{}, true)
		first := uuid.New()
		require.True(t, s.MarkStarted(first, startedAt))
		_, ok := s.Complete()
		require.True(t, ok)

		rev := s.Update(checkout.Snapshot{}, true)
		assert.True(t, s.DueAt(rev))
		second := uuid.New()
		assert.True(t, s.MarkStarted(second, startedAt))
		assert.Equal(t, second, s.ID())
	})
}

func TestSession_CanForce(t *testing.T) {
	s := checkout.NewSession()
	assert.False(t, s.CanForce(false))
	assert.True(t, s.CanForce(true), "idle with valid data may be flushed")

	s.Update(checkout.Snapshot{}, true)
	assert.True(t, s.CanForce(true))
	assert.False(t, s.CanForce(false), "pending content that went stale may not be flushed")
}

func TestSession_Dismiss(t *testing.T) {
	t.Run("pending session resets and stops its timer", func(t *testing.T) {
		s := checkout.NewSession()
		rev := s.Update(checkout.Snapshot{}, true)

		assert.True(t, s.Dismiss())
		assert.Equal(t, checkout.StateIdle, s.State())
		assert.False(t, s.DueAt(rev))
	})

	t.Run("started session is left alone", func(t *testing.T) {
		id := uuid.New()
		s := checkout.RestoreStarted(id)

		assert.False(t, s.Dismiss())
		assert.Equal(t, checkout.StateStarted, s.State())
		assert.Equal(t, id, s.ID())
		assert.True(t, s.StartedSent())
	})
}
