package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artprints/internal/models"
	"artprints/internal/repositories"
	"artprints/pkg/rabbitmq"
)

// OrderService validates and persists customer orders. Prices and titles are
// always re-derived from the catalog, so a tampered payload cannot set its
// own total.
type OrderService struct {
	orderRepo repositories.OrderRepository
	printRepo repositories.PrintRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil; order
// events are then skipped.
func NewOrderService(orderRepo repositories.OrderRepository, printRepo repositories.PrintRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		printRepo: printRepo,
		mqClient:  mqClient,
	}
}

// CreateOrder runs the order validation flow: every requested item is
// resolved against the catalog in input order, stock is checked, and the
// total is recomputed from current prices and rounded to 2 decimal places.
// Validation fully precedes persistence, so no partial order is ever stored.
// The returned document is the order as stored; the returned lines carry the
// catalog-resolved title and price per item for display.
//
// Stock is checked but never decremented, so concurrent orders against the
// same limited print can both succeed.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (bson.M, []models.OrderLine, error) {
	if len(req.Items) == 0 {
		return nil, nil, &ValidationError{Reason: "Order must contain at least one item"}
	}

	var total float64
	lines := make([]models.OrderLine, 0, len(req.Items))
	normalized := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		print, err := s.printRepo.FindByID(ctx, item.PrintID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, nil, &NotFoundError{Reason: fmt.Sprintf("Print not found: %s", item.PrintID)}
			}
			return nil, nil, &PersistenceError{Reason: truncateReason(err.Error())}
		}
		if !print.Available() {
			return nil, nil, &ValidationError{Reason: fmt.Sprintf("Print out of stock: %s", print.Title)}
		}

		total += print.Price * float64(item.Quantity)
		lines = append(lines, models.OrderLine{
			PrintID:  print.ID.Hex(),
			Title:    print.Title,
			Price:    print.Price,
			Quantity: item.Quantity,
		})
		normalized = append(normalized, models.OrderItem{
			PrintID:  print.ID.Hex(),
			Quantity: item.Quantity,
		})
	}

	order := &models.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Items:           normalized,
		Total:           math.Round(total*100) / 100,
		Status:          "pending",
		CreatedAt:       time.Now().UTC(),
	}

	saved, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, nil, &PersistenceError{Reason: truncateReason(err.Error())}
	}

	s.publishOrderCreated(saved, order)

	return saved, lines, nil
}

// GetOrder retrieves a stored order document by its identifier.
func (s *OrderService) GetOrder(ctx context.Context, id string) (bson.M, error) {
	doc, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Reason: fmt.Sprintf("Order not found: %s", id)}
		}
		return nil, &PersistenceError{Reason: truncateReason(err.Error())}
	}
	return doc, nil
}

// publishOrderCreated emits an order.created event. Publishing is
// best-effort: a missing client or broker failure only logs a warning and
// never fails the order.
func (s *OrderService) publishOrderCreated(saved bson.M, order *models.Order) {
	if s.mqClient == nil {
		return
	}

	orderID := ""
	if oid, ok := saved["_id"].(primitive.ObjectID); ok {
		orderID = oid.Hex()
	}
	event := map[string]interface{}{
		"order_id":       orderID,
		"customer_email": order.CustomerEmail,
		"status":         order.Status,
		"total":          order.Total,
	}
	if err := s.mqClient.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", orderID, err)
	}
}
