package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/ports"
	"gasdelivery/internal/pkg/errs"
)

const actorContextKey = "gasdelivery.actor"

// AuthMiddleware resolves the bearer token on every request and stores the
// authenticated actor in the echo context.
func AuthMiddleware(identity ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return respondError(ctx, errs.NewUnauthenticatedError("missing bearer token"))
			}

			a, err := identity.CurrentActor(ctx.Request().Context(), token)
			if err != nil {
				return respondError(ctx, err)
			}

			ctx.Set(actorContextKey, a)
			return next(ctx)
		}
	}
}

// currentActor returns the actor resolved by AuthMiddleware.
func currentActor(ctx echo.Context) (*actor.Actor, error) {
	a, ok := ctx.Get(actorContextKey).(*actor.Actor)
	if !ok {
		return nil, errs.NewUnauthenticatedError("no authenticated actor on request")
	}
	return a, nil
}
