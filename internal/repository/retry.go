package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"simsea/internal/interfaces"
)

const (
	DefaultRetryAttempts  = 6
	DefaultRetryBaseDelay = 500 * time.Millisecond
	DefaultRetryMaxDelay  = 5 * time.Second
)

// RetryPolicy re-runs storage operations that fail with a transient error.
// Every repository operation goes through the same policy.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Logger    logrus.FieldLogger

	sleep func(ctx context.Context, d time.Duration) error
}

func DefaultRetryPolicy(logger logrus.FieldLogger) RetryPolicy {
	return RetryPolicy{
		Attempts:  DefaultRetryAttempts,
		BaseDelay: DefaultRetryBaseDelay,
		MaxDelay:  DefaultRetryMaxDelay,
		Logger:    logger,
	}
}

// NewRetryPolicy is DefaultRetryPolicy with the configured attempts and base
// delay applied. Zero or negative settings keep the defaults.
func NewRetryPolicy(attempts int, baseDelay time.Duration, logger logrus.FieldLogger) RetryPolicy {
	p := DefaultRetryPolicy(logger)
	if attempts > 0 {
		p.Attempts = attempts
	}
	if baseDelay > 0 {
		p.BaseDelay = baseDelay
	}
	return p
}

// transientCodes are Postgres SQLSTATEs worth retrying: serialization failure,
// deadlock, lock not available, too many connections, cannot connect now.
var transientCodes = map[pq.ErrorCode]bool{
	"40001": true,
	"40P01": true,
	"55P03": true,
	"53300": true,
	"57P03": true,
}

// IsTransient reports whether err is a contention or availability error that
// may succeed on a later attempt.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return transientCodes[pqErr.Code]
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	d := p.BaseDelay << (attempt - 1)
	if d <= 0 || (p.MaxDelay > 0 && d > p.MaxDelay) {
		return p.MaxDelay
	}
	return d
}

// Do runs fn until it succeeds, fails with a non-transient error, or the
// attempts run out. Exhaustion yields interfaces.ErrStorageUnavailable wrapping
// the last cause.
func (p RetryPolicy) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx)
		if err == nil || !IsTransient(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		d := p.delay(attempt)
		if p.Logger != nil {
			p.Logger.WithFields(logrus.Fields{
				"op":      op,
				"attempt": attempt,
				"delay":   d.String(),
			}).WithError(err).Warn("transient storage error, retrying")
		}
		if serr := sleep(ctx, d); serr != nil {
			return serr
		}
	}
	return fmt.Errorf("%s: %w: %w", op, interfaces.ErrStorageUnavailable, err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
