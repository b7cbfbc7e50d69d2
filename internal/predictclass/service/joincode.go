package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/cryptox"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

// DefaultJoinCodeAttempts bounds the allocation loop.
const DefaultJoinCodeAttempts = 50

// JoinCodeChecker is the slice of store.Classes the allocator reads.
type JoinCodeChecker interface {
	JoinCodeExists(ctx context.Context, code string) (bool, error)
}

// JoinCodeAllocator hands out class join codes that are not in use.
// Uniqueness is only guaranteed at allocation time; the UNIQUE column on
// classes.join_code is what settles races.
type JoinCodeAllocator struct {
	Classes JoinCodeChecker

	// Generate draws one candidate. Defaults to 6 crypto-random [A-Z0-9].
	Generate func() (string, error)

	// MaxAttempts defaults to DefaultJoinCodeAttempts.
	MaxAttempts int
}

// Allocate returns a code that no class held when it was checked.
func (a *JoinCodeAllocator) Allocate(ctx context.Context) (string, error) {
	return a.AllocateAndCreate(ctx, nil)
}

// AllocateAndCreate draws codes until create succeeds with one. A create
// that fails with store.ErrAlreadyExists lost a race for the code and is
// retried with a fresh draw, counting against the same attempt budget.
// A nil create behaves like Allocate.
func (a *JoinCodeAllocator) AllocateAndCreate(
	ctx context.Context,
	create func(ctx context.Context, code string) error,
) (string, error) {
	log := slogx.FromContext(ctx)
	limit := a.maxAttempts()

	for attempt := 1; attempt <= limit; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := a.generate()
		if err != nil {
			return "", fmt.Errorf("generate join code: %w", err)
		}

		taken, err := a.Classes.JoinCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check join code: %w", err)
		}
		if taken {
			log.Debug("join code collision", "attempt", attempt)
			continue
		}

		if create == nil {
			return code, nil
		}

		switch err := create(ctx, code); {
		case err == nil:
			return code, nil
		case errors.Is(err, store.ErrAlreadyExists):
			log.Debug("join code taken on insert", "attempt", attempt)
			continue
		default:
			return "", err
		}
	}

	log.Error("join code allocation exhausted", "attempts", limit)
	return "", ErrAllocationExhausted
}

func (a *JoinCodeAllocator) maxAttempts() int {
	if a.MaxAttempts > 0 {
		return a.MaxAttempts
	}
	return DefaultJoinCodeAttempts
}

func (a *JoinCodeAllocator) generate() (string, error) {
	if a.Generate != nil {
		return a.Generate()
	}
	return cryptox.GenerateCode(domain.JoinCodeAlphabet, domain.JoinCodeLength)
}
