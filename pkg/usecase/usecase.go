package usecase

import (
	"time"
)

// UseCases wires the render and validate flows together
type UseCases struct {
	now          func() time.Time
	abortOnError bool
}

type Option func(*UseCases)

// WithClock overrides the run clock. Artifact bodies stamp this time, which
// keeps re-renders of unchanged input byte-identical under a pinned clock.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

// WithAbortOnError makes critical validation errors halt rendering
func WithAbortOnError(abort bool) Option {
	return func(uc *UseCases) {
		uc.abortOnError = abort
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
