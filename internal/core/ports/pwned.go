package ports

import "context"

// BreachChecker reports whether a password appears in the breach corpus and,
// when it does, how many times it has been seen.
type BreachChecker interface {
	Check(ctx context.Context, password string) (found bool, count int, err error)
}
