package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdentityProvider struct {
	actors map[string]kernel.Actor
}

func (p *stubIdentityProvider) Resolve(_ context.Context, token string) (kernel.Actor, error) {
	actor, ok := p.actors[token]
	if !ok {
		return kernel.Actor{}, errs.NewNotAuthorizedError("session", token)
	}
	return actor, nil
}

func newTestActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func invokeWithSession(t *testing.T, identity *stubIdentityProvider, token string,
	handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		request.Header.Set(SessionTokenHeader, token)
	}
	recorder := httptest.NewRecorder()
	ctx := e.NewContext(request, recorder)

	err := SessionAuth(identity)(handler)(ctx)
	if err != nil {
		e.HTTPErrorHandler(err, ctx)
	}
	return recorder
}

func TestSessionAuth(t *testing.T) {
	t.Run("should reject a request without a token", func(t *testing.T) {
		identity := &stubIdentityProvider{actors: map[string]kernel.Actor{}}

		recorder := invokeWithSession(t, identity, "", func(ctx echo.Context) error {
			t.Fatal("handler must not run without a session")
			return nil
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "invalid or expired session")
	})

	t.Run("should reject an unknown token", func(t *testing.T) {
		identity := &stubIdentityProvider{actors: map[string]kernel.Actor{}}

		recorder := invokeWithSession(t, identity, "nope", func(ctx echo.Context) error {
			t.Fatal("handler must not run with an unresolvable session")
			return nil
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("should expose the resolved actor to the handler", func(t *testing.T) {
		expected := newTestActor(t, kernel.RoleCustomer)
		identity := &stubIdentityProvider{actors: map[string]kernel.Actor{"tok-1": expected}}

		var seen kernel.Actor
		recorder := invokeWithSession(t, identity, "tok-1", func(ctx echo.Context) error {
			actor, ok := actorFromContext(ctx)
			require.True(t, ok)
			seen = actor
			return ctx.NoContent(http.StatusOK)
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, expected.UserID(), seen.UserID())
		assert.Equal(t, expected.Role(), seen.Role())
	})
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	newContext := func() echo.Context {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		return e.NewContext(request, httptest.NewRecorder())
	}

	t.Run("should return the actor when the role matches", func(t *testing.T) {
		ctx := newContext()
		expected := newTestActor(t, kernel.RoleSeller)
		ctx.Set(actorContextKey, expected)

		actor, err := requireRole(ctx, kernel.RoleSeller)

		require.NoError(t, err)
		assert.Equal(t, expected.UserID(), actor.UserID())
	})

	t.Run("should reject a mismatched role with 403", func(t *testing.T) {
		ctx := newContext()
		ctx.Set(actorContextKey, newTestActor(t, kernel.RoleCustomer))

		_, err := requireRole(ctx, kernel.RoleSeller)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("should reject a missing actor with 401", func(t *testing.T) {
		ctx := newContext()

		_, err := requireRole(ctx, kernel.RoleSeller)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestRequireActor(t *testing.T) {
	e := echo.New()

	t.Run("should accept any role", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleCustomer, kernel.RoleSeller, kernel.RoleDelivery} {
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			ctx.Set(actorContextKey, newTestActor(t, role))

			actor, err := requireActor(ctx)

			require.NoError(t, err)
			assert.True(t, actor.Is(role))
		}
	})

	t.Run("should reject a missing actor with 401", func(t *testing.T) {
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		_, err := requireActor(ctx)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
