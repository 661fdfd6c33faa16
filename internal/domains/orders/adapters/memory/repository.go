package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Apurer/go-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-orders-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
// Orders are deep-copied on the way in and out; the map is never exposed.
type Repository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

func NewRepository() *Repository {
	return &Repository{orders: map[uuid.UUID]*domain.Order{}}
}

func (r *Repository) Get(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

func (r *Repository) GetAll(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, order.Clone())
	}
	return list, nil
}

func (r *Repository) Create(_ context.Context, order *domain.Order) error {
	return r.put(order)
}

func (r *Repository) Update(_ context.Context, order *domain.Order) error {
	return r.put(order)
}

func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *Repository) put(order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	if order.ID == uuid.Nil {
		return errors.New("order id is empty")
	}
	clone := order.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[clone.ID] = clone
	return nil
}
