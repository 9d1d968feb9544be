package middleware

// identity.go holds helpers shared across middleware files.  userID pulls
// the subject JWTAuth stored in the Echo context so cache keys and rate
// limit buckets stay scoped to the authenticated grower.  Requests without
// a token resolve to "guest".

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// userID returns a stable string identifier for the authenticated user, or
// "guest" when no user is present.  JWTAuth stores the raw "sub" claim, so
// the value may arrive as float64, string or integer depending on how the
// token was minted.
func userID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "guest"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	case int64:
		return fmt.Sprintf("%d", t)
	case int:
		return fmt.Sprintf("%d", t)
	}
	return "guest"
}
