package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func newTestBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	return NewCircuitBreaker(logrus.New(), name, timeout, maxFailures)
}

func TestNewCircuitBreaker(t *testing.T) {
	breaker := newTestBreaker("test-breaker", 30*time.Second, 3)

	assert.NotNil(t, breaker)
	assert.IsType(t, &completionBreaker{}, breaker)

	wrapper, _ := breaker.(*completionBreaker) //nolint:errcheck
	assert.Equal(t, "test-breaker", wrapper.breaker.Name())
}

func TestCompletionBreaker_Execute_Success(t *testing.T) {
	breaker := newTestBreaker("success-test", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		return nil
	})

	assert.NoError(t, err)
}

func TestCompletionBreaker_Execute_Failure(t *testing.T) {
	breaker := newTestBreaker("failure-test", 30*time.Second, 3)
	testError := errors.New("test error")

	err := breaker.Execute(func() error {
		return testError
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "completion breaker failure-test")
	assert.Contains(t, err.Error(), testError.Error())
}

func TestCompletionBreaker_Execute_CircuitOpen(t *testing.T) {
	breaker := newTestBreaker("circuit-open-test", 100*time.Millisecond, 1)

	err := breaker.Execute(func() error {
		return errors.New("first failure")
	})
	assert.Error(t, err)

	err = breaker.Execute(func() error {
		return errors.New("second failure")
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}

func TestCompletionBreaker_Execute_CircuitRecovery(t *testing.T) {
	breaker := newTestBreaker("recovery-test", 50*time.Millisecond, 1)

	err := breaker.Execute(func() error {
		return errors.New("trigger failure")
	})
	assert.Error(t, err)

	time.Sleep(100 * time.Millisecond)

	err = breaker.Execute(func() error {
		return nil
	})
	assert.NoError(t, err)
}

func TestCompletionBreaker_Execute_StateTransitions(t *testing.T) {
	breaker := newTestBreaker("state-test", 100*time.Millisecond, 2)
	wrapper, _ := breaker.(*completionBreaker) //nolint:errcheck

	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())

	for i := 0; i < 2; i++ {
		err := breaker.Execute(func() error {
			return errors.New("failure")
		})
		assert.Error(t, err)
	}

	assert.Equal(t, gobreaker.StateOpen, wrapper.breaker.State())
}

func TestCompletionBreaker_SingleHalfOpenProbe(t *testing.T) {
	breaker := newTestBreaker("probe-test", 50*time.Millisecond, 1)
	wrapper, _ := breaker.(*completionBreaker) //nolint:errcheck

	err := breaker.Execute(func() error {
		return errors.New("trigger failure")
	})
	assert.Error(t, err)
	assert.Equal(t, gobreaker.StateOpen, wrapper.breaker.State())

	time.Sleep(100 * time.Millisecond)

	// the single allowed probe fails, so the circuit snaps back open
	err = breaker.Execute(func() error {
		return errors.New("probe failure")
	})
	assert.Error(t, err)
	assert.Equal(t, gobreaker.StateOpen, wrapper.breaker.State())
}
