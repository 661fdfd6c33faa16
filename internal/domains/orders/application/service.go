package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-orders-api/internal/domains/orders/ports"
)

// Service orchestrates the order lifecycle use cases. It is the single place where
// existence and validation policy is enforced around store access.
type Service struct {
	repo ports.Repository
}

// NewService wires the order service with its store.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Validate runs the full rule set, identifier included, against a candidate order.
func (s *Service) Validate(_ context.Context, dto types.OrderDTO) error {
	return violationsError(Validate(dto))
}

// GetByID loads a single order.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*types.OrderDTO, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	dto := FromDomain(order)
	return &dto, nil
}

// GetAll lists every stored order. No ordering is guaranteed.
func (s *Service) GetAll(ctx context.Context) ([]types.OrderDTO, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return FromDomainList(orders), nil
}

// Create persists a new order. A missing identifier is assigned during transformation.
func (s *Service) Create(ctx context.Context, dto types.OrderDTO) (*types.OrderDTO, error) {
	if err := violationsError(ValidateContent(dto)); err != nil {
		return nil, err
	}
	order := ToDomain(dto)
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, mapError(err)
	}
	created := FromDomain(order)
	return &created, nil
}

// Update replaces every mutable field of an existing order. The identifier is never changed.
func (s *Service) Update(ctx context.Context, id uuid.UUID, dto types.OrderDTO) (*types.OrderDTO, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if dto.ID != uuid.Nil && dto.ID != id {
		return nil, fmt.Errorf("%w: order id %s does not match %s", ErrInvalidArgument, dto.ID, id)
	}
	if err := violationsError(ValidateContent(dto)); err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	mergeInto(existing, dto)
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, mapError(err)
	}
	updated := FromDomain(existing)
	return &updated, nil
}

// Delete removes an existing order.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := requireID(id); err != nil {
		return err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return mapError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

func requireID(id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: id cannot be an empty GUID", ErrInvalidArgument)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
