package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"go.mongodb.org/mongo-driver/bson"

	"artprints/internal/models"
	"artprints/internal/services"
	"artprints/internal/store"
)

// PrintHandler handles HTTP requests for the art print catalog.
type PrintHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewPrintHandler creates a new PrintHandler.
func NewPrintHandler(service *services.CatalogService) *PrintHandler {
	return &PrintHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *PrintHandler) RegisterRoutes(router fiber.Router) {
	printRoutes := router.Group("/prints")
	printRoutes.Get("/", h.HandleListPrints)
	printRoutes.Post("/", h.HandleCreatePrint)
}

// HandleListPrints lists catalog entries, optionally filtered by the
// featured flag.
func (h *PrintHandler) HandleListPrints(c *fiber.Ctx) error {
	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": fmt.Sprintf("Invalid featured filter: %s", raw),
			})
		}
		featured = &value
	}

	docs, err := h.service.ListPrints(c.Context(), featured)
	if err != nil {
		log.Printf("Error listing prints: %v", err)
		return respondServiceError(c, err)
	}

	serialized := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		serialized = append(serialized, store.SerializeDoc(doc))
	}
	return c.JSON(serialized)
}

// HandleCreatePrint creates a new catalog entry.
func (h *PrintHandler) HandleCreatePrint(c *fiber.Ctx) error {
	var print models.ArtPrint
	if err := c.BodyParser(&print); err != nil {
		log.Printf("Error parsing print request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request body",
			"error":  err.Error(),
		})
	}

	if err := h.validate.Struct(print); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Validation failed",
			"errors": errorMessages,
		})
	}

	doc, err := h.service.CreatePrint(c.Context(), &print)
	if err != nil {
		log.Printf("Error creating print: %v", err)
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(store.SerializeDoc(doc))
}
