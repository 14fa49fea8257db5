package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, httpin.Principal) {
	t.Helper()

	tokens := map[string]httpin.Principal{
		"s3cret": {Name: "dispatcher@example.com", Role: httpin.RoleStaff},
	}

	var seen httpin.Principal
	e := echo.New()
	e.GET("/probe", func(c echo.Context) error {
		seen = httpin.CurrentPrincipal(c)
		return c.NoContent(nethttp.StatusOK)
	}, httpin.BearerAuth(tokens))

	req := httptest.NewRequest(nethttp.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, seen
}

func Test_BearerAuth(t *testing.T) {
	t.Run("resolves a known token to its principal", func(t *testing.T) {
		rec, seen := callWithAuth(t, "Bearer s3cret")

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Equal(t, "dispatcher@example.com", seen.Name)
		assert.Equal(t, httpin.RoleStaff, seen.Role)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec, _ := callWithAuth(t, "")

		require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing bearer token")
	})

	t.Run("rejects a non bearer scheme", func(t *testing.T) {
		rec, _ := callWithAuth(t, "Basic s3cret")

		require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		rec, _ := callWithAuth(t, "Bearer wrong")

		require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid bearer token")
	})
}

func Test_CurrentPrincipal_Unauthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	assert.Equal(t, httpin.Principal{}, httpin.CurrentPrincipal(ctx))
}

func Test_Health(t *testing.T) {
	e := echo.New()
	server := httpin.NewServer(
		commands.CreateAssignmentCommandHandler{},
		commands.UpdateAssignmentStatusCommandHandler{},
		commands.DeleteAssignmentCommandHandler{},
		queries.ListAssignmentsQueryHandler{},
		queries.GetAssignmentHistoryQueryHandler{},
	)
	server.RegisterRoutes(e, httpin.BearerAuth(map[string]httpin.Principal{
		"s3cret": {Name: "dispatcher@example.com", Role: httpin.RoleStaff},
	}))

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}
