package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/present/rest/presenter"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/service"
)

var tracer = otel.Tracer("auth")

type AdminMiddleware struct {
	auth *service.AuthService
}

func NewAdminMiddleware(auth *service.AuthService) *AdminMiddleware {
	return &AdminMiddleware{auth: auth}
}

// RequireAdmin rejects requests that do not carry the admin secret as
// a bearer token. Unlike the public routes, failures here are hard
// 401s: the admin surface has no degraded mode.
func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireAdmin")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")
		split := strings.Split(authHeader, " ")
		if len(split) != 2 || split[0] != "Bearer" {
			span.RecordError(fmt.Errorf("missing or malformed authorization header"))
			return presenter.Unauthorized(c, "admin credentials required")
		}

		if _, err := m.auth.Authenticate(ctx, split[1]); err != nil {
			span.RecordError(err)
			return presenter.Unauthorized(c, "invalid credentials")
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
