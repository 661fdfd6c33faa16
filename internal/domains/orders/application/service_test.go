package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	ordermemory "github.com/Apurer/go-orders-api/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-orders-api/internal/domains/orders/ports"
)

type failingRepo struct {
	err error
}

func (f failingRepo) Get(context.Context, uuid.UUID) (*domain.Order, error) { return nil, f.err }
func (f failingRepo) GetAll(context.Context) ([]*domain.Order, error)       { return nil, f.err }
func (f failingRepo) Create(context.Context, *domain.Order) error           { return f.err }
func (f failingRepo) Update(context.Context, *domain.Order) error           { return f.err }
func (f failingRepo) Delete(context.Context, uuid.UUID) error               { return f.err }

var _ ports.Repository = failingRepo{}

func TestOrderLifecycleScenario(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())
	ctx := context.Background()

	dto := validDTO()
	created, err := svc.Create(ctx, dto)
	require.NoError(t, err)
	require.Equal(t, dto, *created)

	fetched, err := svc.GetByID(ctx, dto.ID)
	require.NoError(t, err)
	require.Equal(t, dto, *fetched)

	shipped := dto
	shipped.Status = domain.StatusShipped
	_, err = svc.Update(ctx, dto.ID, shipped)
	require.NoError(t, err)

	fetched, err = svc.GetByID(ctx, dto.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusShipped, fetched.Status)
	require.Equal(t, dto.Items, fetched.Items)

	require.NoError(t, svc.Delete(ctx, dto.ID))
	_, err = svc.GetByID(ctx, dto.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_AssignsIdentifierWhenMissing(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())
	ctx := context.Background()

	dto := validDTO()
	dto.ID = uuid.Nil
	created, err := svc.Create(ctx, dto)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	dto.ID = created.ID
	require.Equal(t, dto, *fetched)
}

func TestCreate_RejectsInvalidContent(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())

	dto := validDTO()
	dto.Items[0].Quantity = 0
	dto.CustomerID = uuid.Nil
	_, err := svc.Create(context.Background(), dto)
	require.ErrorIs(t, err, ErrValidationFailed)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, []string{"customerID", "orderItems[0].quantity"}, fields(validationErr.Violations))

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestGetByID_NeverCreatedIsNotFound(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())
	for i := 0; i < 5; i++ {
		_, err := svc.GetByID(context.Background(), uuid.New())
		require.ErrorIs(t, err, ErrNotFound)
	}
}

func TestOperations_RejectEmptyIdentifier(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, uuid.Nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.Update(ctx, uuid.Nil, validDTO())
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorIs(t, svc.Delete(ctx, uuid.Nil), ErrInvalidArgument)
}

func TestUpdate_ReplacesMutableFieldsAndKeepsIdentifier(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())
	ctx := context.Background()

	original := validDTO()
	_, err := svc.Create(ctx, original)
	require.NoError(t, err)

	replacement := validDTO()
	replacement.ID = uuid.Nil
	replacement.Status = domain.StatusCompleted
	replacement.Items = []types.OrderItemDTO{
		{ProductID: uuid.New(), Quantity: 3, TotalPrice: decimal.RequireFromString("42.50")},
		{ProductID: uuid.New(), Quantity: 1, TotalPrice: decimal.NewFromInt(7)},
	}
	updated, err := svc.Update(ctx, original.ID, replacement)
	require.NoError(t, err)
	require.Equal(t, original.ID, updated.ID)

	fetched, err := svc.GetByID(ctx, original.ID)
	require.NoError(t, err)
	replacement.ID = original.ID
	require.Equal(t, replacement, *fetched)
}

func TestUpdate_Failures(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())
	ctx := context.Background()

	_, err := svc.Update(ctx, uuid.New(), validDTO())
	require.ErrorIs(t, err, ErrInvalidArgument)

	missing := validDTO()
	_, err = svc.Update(ctx, missing.ID, missing)
	require.ErrorIs(t, err, ErrNotFound)

	invalid := validDTO()
	_, err = svc.Create(ctx, invalid)
	require.NoError(t, err)
	invalid.Items = nil
	_, err = svc.Update(ctx, invalid.ID, invalid)
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestDelete_MissingIsNotFound(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())
	ctx := context.Background()

	dto := validDTO()
	_, err := svc.Create(ctx, dto)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, dto.ID))
	require.ErrorIs(t, svc.Delete(ctx, dto.ID), ErrNotFound)
}

func TestValidate_FullRuleSet(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())
	dto := validDTO()
	require.NoError(t, svc.Validate(context.Background(), dto))

	dto.ID = uuid.Nil
	err := svc.Validate(context.Background(), dto)
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestStoreFailuresAreClassified(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewService(failingRepo{err: boom})
	ctx := context.Background()
	dto := validDTO()

	_, err := svc.Create(ctx, dto)
	require.ErrorIs(t, err, ErrStoreFailure)
	require.ErrorIs(t, err, boom)

	_, err = svc.GetAll(ctx)
	require.ErrorIs(t, err, ErrStoreFailure)
	_, err = svc.GetByID(ctx, dto.ID)
	require.ErrorIs(t, err, ErrStoreFailure)
	_, err = svc.Update(ctx, dto.ID, dto)
	require.ErrorIs(t, err, ErrStoreFailure)
	require.ErrorIs(t, svc.Delete(ctx, dto.ID), ErrStoreFailure)
}

func TestCreate_ConcurrentDistinctOrders(t *testing.T) {
	svc := NewService(ordermemory.NewRepository())
	ctx := context.Background()
	const workers = 50

	dtos := make([]types.OrderDTO, workers)
	for i := range dtos {
		dtos[i] = validDTO()
	}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for _, dto := range dtos {
		wg.Add(1)
		go func(dto types.OrderDTO) {
			defer wg.Done()
			_, err := svc.Create(ctx, dto)
			errs <- err
		}(dto)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	for _, dto := range dtos {
		fetched, err := svc.GetByID(ctx, dto.ID)
		require.NoError(t, err)
		require.Equal(t, dto, *fetched)
	}
	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers)
}
