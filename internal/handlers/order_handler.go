package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"artprints/internal/models"
	"artprints/internal/services"
	"artprints/internal/store"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrder)
}

// HandleCreateOrder creates an order through the validation flow and returns
// the stored order plus the detailed line items.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request body",
			"error":  err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
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

	saved, lines, err := h.service.CreateOrder(c.Context(), req)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondServiceError(c, err)
	}

	resp := store.SerializeDoc(saved)
	resp["items_detailed"] = lines
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleGetOrder retrieves a single stored order.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	doc, err := h.service.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(store.SerializeDoc(doc))
}
