package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artprints/internal/models"
	"artprints/internal/repositories"
	"artprints/internal/services"
)

// MockPrintRepo is a mock implementation of repositories.PrintRepository.
type MockPrintRepo struct {
	mock.Mock
}

func (m *MockPrintRepo) List(ctx context.Context, featured *bool) ([]bson.M, error) {
	args := m.Called(ctx, featured)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockPrintRepo) FindByID(ctx context.Context, id string) (*models.ArtPrint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArtPrint), args.Error(1)
}

func (m *MockPrintRepo) Create(ctx context.Context, print *models.ArtPrint) (bson.M, error) {
	args := m.Called(ctx, print)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockPrintRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepo is a mock implementation of repositories.OrderRepository.
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *models.Order) (bson.M, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockOrderRepo) FindByID(ctx context.Context, id string) (bson.M, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func boolPtr(b bool) *bool { return &b }

func catalogPrint(id primitive.ObjectID, title string, price float64, inStock bool) *models.ArtPrint {
	return &models.ArtPrint{
		ID:      id,
		Title:   title,
		Artist:  "Test Artist",
		Price:   price,
		InStock: boolPtr(inStock),
	}
}

func orderRequest(items []models.OrderItem) models.CreateOrderRequest {
	return models.CreateOrderRequest{
		CustomerName:    "Jordan Ellis",
		CustomerEmail:   "jordan@example.com",
		ShippingAddress: "12 Gallery Lane",
		Items:           items,
	}
}

func TestOrderService_CreateOrder_RecomputesTotal(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	p1ID := primitive.NewObjectID()
	p2ID := primitive.NewObjectID()
	printRepo.On("FindByID", mock.Anything, p1ID.Hex()).Return(catalogPrint(p1ID, "Sunlit Dunes", 49.0, true), nil).Once()
	printRepo.On("FindByID", mock.Anything, p2ID.Hex()).Return(catalogPrint(p2ID, "Coastal Mist", 59.0, true), nil).Once()

	var captured *models.Order
	savedID := primitive.NewObjectID()
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*models.Order) }).
		Return(bson.M{"_id": savedID, "total": 157.0, "status": "pending"}, nil).Once()

	saved, lines, err := service.CreateOrder(context.Background(), orderRequest([]models.OrderItem{
		{PrintID: p1ID.Hex(), Quantity: 2},
		{PrintID: p2ID.Hex(), Quantity: 1},
	}))

	assert.NoError(t, err)
	assert.Equal(t, savedID, saved["_id"])
	assert.NotNil(t, captured)
	assert.Equal(t, 157.0, captured.Total) // 49*2 + 59*1
	assert.Equal(t, "pending", captured.Status)
	assert.Equal(t, "Jordan Ellis", captured.CustomerName)

	// normalized stored items keep input order, resolved ids, quantities
	assert.Equal(t, []models.OrderItem{
		{PrintID: p1ID.Hex(), Quantity: 2},
		{PrintID: p2ID.Hex(), Quantity: 1},
	}, captured.Items)

	// detailed lines carry title and price per item
	assert.Equal(t, []models.OrderLine{
		{PrintID: p1ID.Hex(), Title: "Sunlit Dunes", Price: 49.0, Quantity: 2},
		{PrintID: p2ID.Hex(), Title: "Coastal Mist", Price: 59.0, Quantity: 1},
	}, lines)

	printRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_SingleItemScenario(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	id := primitive.NewObjectID()
	printRepo.On("FindByID", mock.Anything, id.Hex()).Return(catalogPrint(id, "Sunlit Dunes", 49.0, true), nil).Once()

	var captured *models.Order
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*models.Order) }).
		Return(bson.M{"_id": primitive.NewObjectID()}, nil).Once()

	_, _, err := service.CreateOrder(context.Background(), orderRequest([]models.OrderItem{
		{PrintID: id.Hex(), Quantity: 2},
	}))

	assert.NoError(t, err)
	assert.Equal(t, 98.0, captured.Total)
	assert.Equal(t, "pending", captured.Status)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	_, _, err := service.CreateOrder(context.Background(), orderRequest(nil))

	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Order must contain at least one item", validationErr.Reason)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_PrintNotFound(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	unknown := primitive.NewObjectID().Hex()
	printRepo.On("FindByID", mock.Anything, unknown).
		Return(nil, fmt.Errorf("print %s: %w", unknown, repositories.ErrNotFound)).Once()

	_, _, err := service.CreateOrder(context.Background(), orderRequest([]models.OrderItem{
		{PrintID: unknown, Quantity: 1},
	}))

	var notFoundErr *services.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, fmt.Sprintf("Print not found: %s", unknown), notFoundErr.Reason)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_OutOfStock(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	id := primitive.NewObjectID()
	printRepo.On("FindByID", mock.Anything, id.Hex()).Return(catalogPrint(id, "Coastal Mist", 59.0, false), nil).Once()

	_, _, err := service.CreateOrder(context.Background(), orderRequest([]models.OrderItem{
		{PrintID: id.Hex(), Quantity: 1},
	}))

	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Print out of stock: Coastal Mist", validationErr.Reason)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_FailsBeforePersistingAnything(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	// first item resolves, second is missing: nothing may be persisted
	okID := primitive.NewObjectID()
	badID := primitive.NewObjectID().Hex()
	printRepo.On("FindByID", mock.Anything, okID.Hex()).Return(catalogPrint(okID, "Sunlit Dunes", 49.0, true), nil).Once()
	printRepo.On("FindByID", mock.Anything, badID).
		Return(nil, fmt.Errorf("print %s: %w", badID, repositories.ErrNotFound)).Once()

	_, _, err := service.CreateOrder(context.Background(), orderRequest([]models.OrderItem{
		{PrintID: okID.Hex(), Quantity: 1},
		{PrintID: badID, Quantity: 3},
	}))

	var notFoundErr *services.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_PersistFailure(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	id := primitive.NewObjectID()
	printRepo.On("FindByID", mock.Anything, id.Hex()).Return(catalogPrint(id, "Sunlit Dunes", 49.0, true), nil).Once()
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Return(nil, fmt.Errorf("failed to create order: %s", strings.Repeat("x", 500))).Once()

	_, _, err := service.CreateOrder(context.Background(), orderRequest([]models.OrderItem{
		{PrintID: id.Hex(), Quantity: 1},
	}))

	var persistErr *services.PersistenceError
	assert.ErrorAs(t, err, &persistErr)
	assert.LessOrEqual(t, len(persistErr.Reason), 200)
}

func TestOrderService_CreateOrder_MissingPriceCountsAsZero(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	// a document without a price field decodes to a zero price
	id := primitive.NewObjectID()
	printRepo.On("FindByID", mock.Anything, id.Hex()).
		Return(&models.ArtPrint{ID: id, Title: "Untagged Proof"}, nil).Once()

	var captured *models.Order
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*models.Order) }).
		Return(bson.M{"_id": primitive.NewObjectID()}, nil).Once()

	_, lines, err := service.CreateOrder(context.Background(), orderRequest([]models.OrderItem{
		{PrintID: id.Hex(), Quantity: 4},
	}))

	assert.NoError(t, err)
	assert.Equal(t, 0.0, captured.Total)
	assert.Equal(t, 0.0, lines[0].Price)
}

func TestOrderService_CreateOrder_RoundsTotalToTwoDecimals(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	aID := primitive.NewObjectID()
	bID := primitive.NewObjectID()
	printRepo.On("FindByID", mock.Anything, aID.Hex()).Return(catalogPrint(aID, "A", 0.1, true), nil).Once()
	printRepo.On("FindByID", mock.Anything, bID.Hex()).Return(catalogPrint(bID, "B", 0.2, true), nil).Once()

	var captured *models.Order
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*models.Order) }).
		Return(bson.M{"_id": primitive.NewObjectID()}, nil).Once()

	_, _, err := service.CreateOrder(context.Background(), orderRequest([]models.OrderItem{
		{PrintID: aID.Hex(), Quantity: 1},
		{PrintID: bID.Hex(), Quantity: 1},
	}))

	assert.NoError(t, err)
	assert.Equal(t, 0.3, captured.Total)
}

func TestOrderService_GetOrder(t *testing.T) {
	printRepo := new(MockPrintRepo)
	orderRepo := new(MockOrderRepo)
	service := services.NewOrderService(orderRepo, printRepo, nil)

	id := primitive.NewObjectID()
	orderRepo.On("FindByID", mock.Anything, id.Hex()).
		Return(bson.M{"_id": id, "status": "pending"}, nil).Once()

	doc, err := service.GetOrder(context.Background(), id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "pending", doc["status"])

	missing := primitive.NewObjectID().Hex()
	orderRepo.On("FindByID", mock.Anything, missing).
		Return(nil, fmt.Errorf("order %s: %w", missing, repositories.ErrNotFound)).Once()

	_, err = service.GetOrder(context.Background(), missing)
	var notFoundErr *services.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, notFoundErr.Reason, "Order not found")
}
