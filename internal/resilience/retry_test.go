package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("transient")

func fastConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2,
		Retryable:     func(err error) bool { return errors.Is(err, errTransient) },
	}
}

func TestDo(t *testing.T) {
	permanent := errors.New("permanent")

	tests := []struct {
		name          string
		failures      []error
		expectedErr   error
		expectedCalls int
	}{
		{"first try", nil, nil, 1},
		{"recovers", []error{errTransient, errTransient}, nil, 3},
		{"gives up", []error{errTransient, errTransient, errTransient, errTransient}, errTransient, 3},
		{"not retryable", []error{permanent}, permanent, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Do(context.Background(), fastConfig(), func() error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			})

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestDoNilPredicateRunsOnce(t *testing.T) {
	calls := 0
	err := Do(context.Background(), RetryConfig{MaxAttempts: 5}, func() error {
		calls++
		return errTransient
	})
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

func TestDoHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig()
	cfg.InitialDelay = time.Hour
	cfg.MaxDelay = time.Hour

	calls := 0
	err := Do(ctx, cfg, func() error {
		calls++
		cancel()
		return errTransient
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestCalculateDelay(t *testing.T) {
	cfg := RetryConfig{InitialDelay: 10 * time.Millisecond, MaxDelay: 50 * time.Millisecond, BackoffFactor: 2}

	assert.Equal(t, 10*time.Millisecond, calculateDelay(cfg, 0))
	assert.Equal(t, 40*time.Millisecond, calculateDelay(cfg, 2))
	assert.Equal(t, 50*time.Millisecond, calculateDelay(cfg, 5))

	cfg.JitterEnabled = true
	d := calculateDelay(cfg, 0)
	assert.GreaterOrEqual(t, d, 10*time.Millisecond)
	assert.Less(t, d, 11*time.Millisecond)
}
