package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rackline/consign-backend/internal/actorctx"
)

// Actor copies the staff identity header and a correlation id into the
// request context so services can stamp audit entries. Authentication is
// handled upstream; this only carries the already-verified name through.
func Actor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()

		if actor := req.Header.Get("X-Actor"); actor != "" {
			ctx = actorctx.WithActor(ctx, actor)
		}
		rid := req.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx = actorctx.WithRID(ctx, rid)

		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}
