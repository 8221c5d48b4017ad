package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmconnect/pkg/session"
	"farmconnect/pkg/state"
)

const stateKey = "state"

// RequireState resolves the container of the authenticated farmer. It must
// run after Session. A valid token whose session was closed gets a 401.
func RequireState(reg *session.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			st, ok := reg.Get(FarmerID(c))
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "session expired, log in again"})
			}
			c.Set(stateKey, st)
			return next(c)
		}
	}
}

func StateOf(c echo.Context) *state.State {
	st, _ := c.Get(stateKey).(*state.State)
	return st
}
