package reader

import (
	"errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RetrySettings bounds how the coordinator retries a failed read attempt.
type RetrySettings struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration
	// BackoffMultiplier scales the delay after each failed attempt.
	BackoffMultiplier float64
	// MaxBackoff caps the delay between attempts.
	MaxBackoff time.Duration
}

// DefaultRetrySettings mirrors the server team's recommended client defaults.
func DefaultRetrySettings() RetrySettings {
	return RetrySettings{
		MaxAttempts:       5,
		InitialBackoff:    100 * time.Millisecond,
		BackoffMultiplier: 2,
		MaxBackoff:        5 * time.Second,
	}
}

func (r RetrySettings) validate() error {
	var errGrp []error
	if r.MaxAttempts < 1 {
		errGrp = append(errGrp, errors.New("max attempts must be at least 1"))
	}
	if r.InitialBackoff <= 0 {
		errGrp = append(errGrp, errors.New("initial backoff must be positive"))
	}
	if r.BackoffMultiplier < 1 {
		errGrp = append(errGrp, errors.New("backoff multiplier must be at least 1"))
	}
	return errors.Join(errGrp...)
}

// newBackOff maps the settings onto an exponential backoff. Randomization is
// left at the library default so concurrent readers don't retry in lockstep.
func (r RetrySettings) newBackOff() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.InitialBackoff
	exp.Multiplier = r.BackoffMultiplier
	if r.MaxBackoff > 0 {
		exp.MaxInterval = r.MaxBackoff
	}
	exp.MaxElapsedTime = 0 // attempts are bounded by count, not wall clock
	exp.Reset()
	return exp
}

// isRetryable reports whether a failed attempt may be re-issued from the
// resume point. Protocol violations are never retryable: they mean the
// server and client disagree about the chunk contract, and retrying would
// only replay the disagreement.
func isRetryable(err error) bool {
	if errors.Is(err, ErrProtocolViolation) {
		return false
	}
	if errors.Is(err, ErrTruncatedStream) {
		return true
	}
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted:
			return true
		}
	}
	return false
}
