package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
)

// IdentityProvider resolves a session token into the acting user. Tokens
// come from the platform's auth service; this system only reads them.
type IdentityProvider interface {
	// Resolve returns the actor behind the token. Returns
	// NotAuthorizedError for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (kernel.Actor, error)
}
