package persistence

import (
	"sync"
	"time"

	"go-order-intake/src/services/order/domain"
)

// MemoryOrderRepository keeps every order for the lifetime of the process.
// Orders are keyed by ID; the ids slice preserves insertion order so that
// listings stay stable across calls. It implements domain.OrderStore.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	ids    []string
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]domain.Order)}
}

func (r *MemoryOrderRepository) Create(order domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[order.ID]; !exists {
		r.ids = append(r.ids, order.ID)
	}
	r.orders[order.ID] = order
}

func (r *MemoryOrderRepository) GetByID(orderID string) (domain.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[orderID]
	return order, ok
}

// UpdateStatus overwrites only the status and updated timestamp of an
// existing order. Items, customer and amounts are never touched here.
func (r *MemoryOrderRepository) UpdateStatus(orderID string, status string, updatedAt time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return false
	}
	order.Status = status
	order.UpdatedAt = updatedAt
	r.orders[orderID] = order
	return true
}

func (r *MemoryOrderRepository) List() []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]domain.Order, 0, len(r.ids))
	for _, id := range r.ids {
		orders = append(orders, r.orders[id])
	}
	return orders
}

func (r *MemoryOrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}
