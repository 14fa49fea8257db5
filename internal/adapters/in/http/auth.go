package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Role is the access level attached to an API token.
type Role string

const (
	// RoleAdmin may perform every dispatch operation.
	RoleAdmin Role = "admin"

	// RoleStaff may perform every dispatch operation. The distinction from
	// admin is kept for token bookkeeping; the API itself treats them alike.
	RoleStaff Role = "staff"
)

// Principal is the authenticated operator resolved from a bearer token. Its
// name ends up in assigned_by and changed_by audit fields.
type Principal struct {
	Name string
	Role Role
}

const principalContextKey = "principal"

// BearerAuth returns middleware that resolves the Authorization bearer token
// against the configured token set and stores the matching Principal on the
// request context. Requests without a known token get a 401.
func BearerAuth(tokens map[string]Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			principal, found := tokens[token]
			if !found || (principal.Role != RoleAdmin && principal.Role != RoleStaff) {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid bearer token",
				})
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// CurrentPrincipal returns the operator authenticated for this request.
// The zero Principal comes back for unauthenticated routes.
func CurrentPrincipal(c echo.Context) Principal {
	principal, _ := c.Get(principalContextKey).(Principal)
	return principal
}
