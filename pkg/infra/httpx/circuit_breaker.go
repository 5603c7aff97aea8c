package httpx

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

type CircuitBreaker interface {
	Execute(fn func() error) error
}

// completionBreaker guards the outbound model completion call. Half-open
// probing is limited to a single request because every trial is a paid
// completion against the provider.
type completionBreaker struct {
	breaker *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(logger *logrus.Logger, name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("completion breaker state changed")
		},
	}
	return &completionBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *completionBreaker) Execute(fn func() error) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if err != nil {
		return fmt.Errorf("completion breaker %s: %w", b.breaker.Name(), err)
	}
	return nil
}
