package ports

import (
	"context"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
)

// SessionStore persists the authenticated session (user, token, logged-in
// flag) across process restarts. Implementations serialize access on a single
// instance but are not multi-process safe.
type SessionStore interface {
	// Save persists the user and token together and marks the session active.
	Save(ctx context.Context, user *domain.User, token string) error

	// User returns the stored user, or nil when none is stored.
	User(ctx context.Context) (*domain.User, error)

	// Token returns the stored bearer token, empty when none is stored.
	Token(ctx context.Context) (string, error)

	// IsLoggedIn reads the active flag only; it makes no claim about the
	// user or token beyond what Save and Clear guarantee.
	IsLoggedIn(ctx context.Context) (bool, error)

	// UpdateUser replaces the stored user without touching token or flag.
	UpdateUser(ctx context.Context, user *domain.User) error

	// Clear removes user, token and flag together. Idempotent.
	Clear(ctx context.Context) error
}
