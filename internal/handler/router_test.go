//go:build unit

package handler

import (
	"net/http"
	"testing"

	"campus-reserve/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Handlers hold nil receivers here; gin only stores the method values, so
// registration is exercised without any request reaching a handler.
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	setupRoutes(engine, Handlers{}, middleware.NewAuthMiddleware(nil))

	routes := make(map[string]bool)
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestRouteVerbs(t *testing.T) {
	routes := registeredRoutes(t)

	expected := []string{
		http.MethodPatch + " /api/staff/reservations/:id/items/:itemId/condition",
		http.MethodPatch + " /api/cart/items/:equipmentId",
		http.MethodDelete + " /api/cart/items/:equipmentId",
		http.MethodPatch + " /api/equipment/:id/status",
		http.MethodGet + " /api/equipment/:id/availability",
		http.MethodPost + " /api/staff/scanner/scan",
		http.MethodPost + " /api/reservations/:id/return-request",
	}
	for _, want := range expected {
		assert.True(t, routes[want], want)
	}

	assert.False(t, routes[http.MethodPost+" /api/staff/reservations/:id/items/:itemId/condition"],
		"item condition must not accept POST")
}
