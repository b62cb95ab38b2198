// internal/adapters/resilient/breaker_store.go
package resilient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/pkg/metrics"
)

// Settings configures the breaker.
type Settings struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	MinRequests uint32
	FailureRate float64
}

// DefaultSettings returns the breaker defaults.
func DefaultSettings(name string) Settings {
	return Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		MinRequests: 3,
		FailureRate: 0.6,
	}
}

// BreakerStore wraps a KeyValueStore with a circuit breaker. A missing key
// counts as success.
type BreakerStore struct {
	next   ports.KeyValueStore
	cb     *gobreaker.CircuitBreaker
	name   string
	logger *slog.Logger
}

var _ ports.KeyValueStore = (*BreakerStore)(nil)

// NewBreakerStore creates a store guarded by a circuit breaker.
func NewBreakerStore(next ports.KeyValueStore, settings Settings, logger *slog.Logger) *BreakerStore {
	logger = logger.With(slog.String("component", "breaker"), slog.String("circuit", settings.Name))

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= settings.FailureRate
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ports.ErrKeyNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			logger.Warn("circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(settings.Name).Set(0)

	return &BreakerStore{next: next, cb: cb, name: settings.Name, logger: logger}
}

func (s *BreakerStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.cb.Execute(func() (interface{}, error) {
		return s.next.Get(ctx, key)
	})
	if err != nil {
		return "", s.wrap(err)
	}
	return v.(string), nil
}

func (s *BreakerStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.Set(ctx, key, value)
	})
	return s.wrap(err)
}

func (s *BreakerStore) Remove(ctx context.Context, key string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.Remove(ctx, key)
	})
	return s.wrap(err)
}

// Ping bypasses the breaker so readiness reflects the backend itself.
func (s *BreakerStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

// State returns the breaker state name.
func (s *BreakerStore) State() string {
	return s.cb.State().String()
}

func (s *BreakerStore) wrap(err error) error {
	if err == nil || errors.Is(err, ports.ErrKeyNotFound) {
		return err
	}
	metrics.CircuitBreakerFailures.WithLabelValues(s.name).Inc()
	if errors.Is(err, gobreaker.ErrOpenState) {
		return fmt.Errorf("circuit breaker %s is open: %w", s.name, err)
	}
	if errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("circuit breaker %s: too many requests in half-open state: %w", s.name, err)
	}
	return err
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
