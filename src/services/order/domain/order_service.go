package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"go-order-intake/src/infrastructure/log"
	"go-order-intake/src/infrastructure/oms"
	"go-order-intake/src/services/catalog"
)

// OrderStore is the persistence port the service writes orders through.
// It is implemented by the in-memory repository.
type OrderStore interface {
	Create(order Order)
	GetByID(orderID string) (Order, bool)
	UpdateStatus(orderID string, status string, updatedAt time.Time) bool
	List() []Order
	Count() int
}

// ItemInput is a single requested line: which product and how many.
// Any client-supplied price never reaches the service.
type ItemInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	Items    []ItemInput
	Customer Customer
}

type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	ListOrders(ctx context.Context) []Order
}

type orderService struct {
	logger         log.Logger
	catalogService catalog.CatalogService
	store          OrderStore
	statusClient   oms.StatusClient
}

func NewOrderService(
	logger log.Logger,
	catalogService catalog.CatalogService,
	store OrderStore,
	statusClient oms.StatusClient,
) OrderService {
	return &orderService{
		logger:         logger,
		catalogService: catalogService,
		store:          store,
		statusClient:   statusClient,
	}
}

// CreateOrder validates the request, prices every line from the catalog and
// stores the resulting order with status "pending". Validation short-circuits
// on the first failure.
func (s *orderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	if len(input.Items) == 0 {
		return nil, NewValidationError("Order must contain at least one item")
	}
	if input.Customer.Name == "" || input.Customer.Email == "" {
		return nil, NewValidationError("Customer name and email are required")
	}

	items := make([]OrderItem, 0, len(input.Items))
	for _, requested := range input.Items {
		product, found := s.catalogService.GetProduct(ctx, requested.ProductID)
		if !found {
			return nil, NewValidationError("Product not found: %s", requested.ProductID)
		}
		if requested.Quantity <= 0 {
			return nil, NewValidationError("Quantity must be positive for product: %s", requested.ProductID)
		}

		// Unit price always comes from the catalog record.
		items = append(items, OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  requested.Quantity,
			UnitPrice: product.Price,
			Subtotal:  LineSubtotal(product.Price, requested.Quantity),
		})
	}

	now := time.Now().UTC()
	order := Order{
		ID:          uuid.NewString(),
		Items:       items,
		Customer:    input.Customer,
		TotalAmount: SumSubtotals(items),
		Currency:    Currency,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.store.Create(order)
	s.logger.InfoWithExtra(ctx, "Order created", map[string]any{
		"OrderId":     order.ID,
		"TotalAmount": order.TotalAmount,
		"ItemCount":   len(order.Items),
	})

	return &order, nil
}

// GetOrder returns the stored order, refreshing its status from the
// order-management service first. The refresh is best-effort: any downstream
// failure is logged and the last-known local record is returned.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	order, ok := s.store.GetByID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}

	remote, err := s.statusClient.GetOrderStatus(ctx, orderID)
	if err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("Status enrichment failed for order %s: %v", orderID, err))
		return &order, nil
	}

	if remote.Status != order.Status {
		updatedAt := remote.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = time.Now().UTC()
		}
		if s.store.UpdateStatus(orderID, remote.Status, updatedAt) {
			order.Status = remote.Status
			order.UpdatedAt = updatedAt
		}
	}

	return &order, nil
}

// ListOrders returns every stored order in insertion order. No enrichment
// call is made here.
func (s *orderService) ListOrders(ctx context.Context) []Order {
	return s.store.List()
}
