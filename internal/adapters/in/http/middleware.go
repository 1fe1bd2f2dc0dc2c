package http

import (
	"net/http"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const (
	// SessionTokenHeader carries the caller's session token.
	SessionTokenHeader = "X-Session-Token"

	actorContextKey = "actor"
)

// SessionAuth resolves the session token header into an Actor and stores
// it on the request context. Requests without a resolvable session are
// rejected with 401 before reaching any handler.
func SessionAuth(identity ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := ctx.Request().Header.Get(SessionTokenHeader)

			actor, err := identity.Resolve(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired session",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFromContext returns the Actor stored by SessionAuth.
func actorFromContext(ctx echo.Context) (kernel.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}

// requireRole fetches the actor and rejects callers holding a different
// marketplace role.
func requireRole(ctx echo.Context, role kernel.Role) (kernel.Actor, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
	}
	if !actor.Is(role) {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusForbidden,
			"role "+string(actor.Role())+" cannot perform this operation")
	}
	return actor, nil
}

// requireActor fetches the actor for endpoints open to every role.
func requireActor(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
	}
	return actor, nil
}
