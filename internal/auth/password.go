package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// PasswordHasher hashes and compares passwords with bcrypt. At most `workers`
// hash computations run at once; callers beyond that wait or give up with their context.
type PasswordHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewPasswordHasher creates a hasher. cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost, workers int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if workers < 1 {
		workers = 1
	}
	return &PasswordHasher{cost: cost, sem: semaphore.NewWeighted(int64(workers))}
}

// Hash returns the salted bcrypt hash of password.
func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. A malformed hash is reported as an error.
func (h *PasswordHasher) Compare(ctx context.Context, hash, password string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, fmt.Errorf("compare password: %w", err)
		}
		return false, nil
	}
	return true, nil
}
