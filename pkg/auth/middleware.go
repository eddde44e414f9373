package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func bearer(c echo.Context) string {
	h := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// Required rejects requests without a valid token and sets "uid".
func Required(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok := bearer(c)
			if tok == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing token"})
			}
			id, err := issuer.Verify(tok)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			c.Set("uid", id)
			return next(c)
		}
	}
}

// Optional sets "uid" when a valid token is present and passes through
// anonymously otherwise.
func Optional(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tok := bearer(c); tok != "" {
				if id, err := issuer.Verify(tok); err == nil {
					c.Set("uid", id)
				}
			}
			return next(c)
		}
	}
}
