package ports

import (
	"context"

	"github.com/darksignal/darksignal/internal/core/domain"
)

// UserRepository defines read access to the user store.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthService validates credentials and produces a session on success.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
}

// SessionStore persists sessions keyed by an opaque token.
type SessionStore interface {
	Create(ctx context.Context, sess *domain.Session) (string, error)
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
