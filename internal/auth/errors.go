package auth

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken        = errors.New("missing bearer token")
	ErrInvalidToken        = errors.New("invalid or revoked token")
	ErrNoSession           = errors.New("no active session")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// Failure is a sign-in rejected by the identity provider or the rate limiter.
type Failure struct {
	Kind FailureKind
	Err  error
}

// NewFailure wraps err as a sign-in failure of the given kind.
func NewFailure(kind FailureKind, err error) *Failure {
	return &Failure{Kind: kind, Err: err}
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("sign-in failed: %s", f.Kind)
	}
	return fmt.Sprintf("sign-in failed: %s: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// AsFailure returns the Failure in err's chain, if any.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
