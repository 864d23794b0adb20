package appointment

import (
	"context"
	"errors"
	"fmt"
)

// ErrRefetch marks a successful mutation whose follow-up list query failed.
var ErrRefetch = errors.New("refetch after mutation failed")

// Mutate runs a write and, only when it succeeds, re-runs the list query
// that the caller renders from.
type Mutate[T any] struct {
	refetch func(ctx context.Context) (T, error)
}

func NewMutate[T any](refetch func(ctx context.Context) (T, error)) *Mutate[T] {
	return &Mutate[T]{refetch: refetch}
}

func (uc *Mutate[T]) Execute(
	ctx context.Context,
	mutation func(ctx context.Context) error,
) (T, error) {

	var zero T
	if err := mutation(ctx); err != nil {
		return zero, err
	}

	out, err := uc.refetch(ctx)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrRefetch, err)
	}
	return out, nil
}
