package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"artprints/internal/store"
)

// HealthHandler serves the liveness and store diagnostics endpoints.
type HealthHandler struct {
	store  *store.Store // nil when no DATABASE_URL is configured
	urlSet bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(st *store.Store, databaseURLSet bool) *HealthHandler {
	return &HealthHandler{
		store:  st,
		urlSet: databaseURLSet,
	}
}

// RegisterRoutes registers the health routes with the Fiber app.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Get("/test", h.HandleDiagnostics)
}

// HandleRoot reports liveness.
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Art Prints API running",
	})
}

// HandleDiagnostics reports store connectivity. It degrades instead of
// failing: a missing or broken store connection still yields a 200 with the
// observed status.
func (h *HealthHandler) HandleDiagnostics(c *fiber.Ctx) error {
	resp := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if h.urlSet {
		resp["database_url"] = "set"
	}

	if h.store.Connected() {
		resp["database"] = "available"
		resp["database_name"] = h.store.Name()
		resp["connection_status"] = "connected"

		names, err := h.store.CollectionNames(c.Context(), 10)
		if err != nil {
			resp["database"] = fmt.Sprintf("connected but error: %.50s", err.Error())
		} else {
			resp["collections"] = names
			resp["database"] = "connected and working"
		}
	}

	return c.JSON(resp)
}
