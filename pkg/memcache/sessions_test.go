package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safarsathi/internal/models/session_models"
)

func newTestSessions(ttl time.Duration) (*Sessions, *time.Time) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(ttl)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestSessions_PutGetOverwrite(t *testing.T) {
	s, _ := newTestSessions(time.Hour)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Put("a", session_models.TripRecord{Destination: "Rome", Itinerary: "old", HotelRecommendations: "x"})
	s.Put("a", session_models.TripRecord{Destination: "Oslo"})

	got, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, session_models.TripRecord{Destination: "Oslo"}, got)

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
}

func TestSessions_Expiry(t *testing.T) {
	s, now := newTestSessions(time.Hour)

	s.Put("old", session_models.TripRecord{Destination: "Rome"})
	*now = now.Add(30 * time.Minute)
	s.Put("fresh", session_models.TripRecord{Destination: "Oslo"})

	*now = now.Add(45 * time.Minute)
	_, ok := s.Get("old")
	assert.False(t, ok, "expired session must not be returned")
	_, ok = s.Get("fresh")
	assert.True(t, ok)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestSessions_RunJanitorStops(t *testing.T) {
	s := NewSessions(time.Nanosecond)
	s.Put("a", session_models.TripRecord{})

	stop := make(chan struct{})
	done := make(chan struct{})
	swept := make(chan int, 1)
	go func() {
		s.RunJanitor(time.Millisecond, stop, func(n int) {
			select {
			case swept <- n:
			default:
			}
		})
		close(done)
	}()

	select {
	case n := <-swept:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor never swept")
	}

	close(stop)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSessions_GetSlidesExpiry(t *testing.T) {
	s, now := newTestSessions(time.Hour)
	s.Put("a", session_models.TripRecord{Destination: "Rome", Itinerary: "plan"})

	*now = now.Add(45 * time.Minute)
	_, ok := s.Get("a")
	assert.True(t, ok)

	*now = now.Add(45 * time.Minute)
	got, ok := s.Get("a")
	assert.True(t, ok, "a session that keeps being read must stay alive")
	assert.Equal(t, "plan", got.Itinerary)
	assert.Equal(t, 0, s.Sweep())

	*now = now.Add(61 * time.Minute)
	_, ok = s.Get("a")
	assert.False(t, ok)
}

func TestJanitorInterval(t *testing.T) {
	assert.Equal(t, 30*time.Minute, JanitorInterval(2*time.Hour))
	assert.Equal(t, MinJanitorInterval, JanitorInterval(3*time.Nanosecond))
	assert.Equal(t, MinJanitorInterval, JanitorInterval(0))
}

func TestSessions_RunJanitorNonPositiveInterval(t *testing.T) {
	s := NewSessions(time.Hour)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		assert.NotPanics(t, func() { s.RunJanitor(3*time.Nanosecond/4, stop, nil) })
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}
