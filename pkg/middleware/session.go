package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmconnect/pkg/token"
)

const (
	// CookieName carries the companion token for browser clients.
	CookieName = "FC_SESSION"
	// FarmerIDKey is where the authenticated farmer id lands in the echo context.
	FarmerIDKey = "farmer_id"
)

// Session requires a valid companion token, read from the Authorization
// bearer header or the session cookie. Anything else is a 401.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
				raw = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			}
			if raw == "" {
				if ck, err := c.Cookie(CookieName); err == nil {
					raw = ck.Value
				}
			}
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			claims, err := token.Validate(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			c.Set(FarmerIDKey, claims.FarmerID)
			return next(c)
		}
	}
}

// FarmerID returns the id Session stored, or "".
func FarmerID(c echo.Context) string {
	id, _ := c.Get(FarmerIDKey).(string)
	return id
}
