package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderapp "github.com/Apurer/go-orders-api/internal/domains/orders/application"
	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-orders-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-orders-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Validate(ctx context.Context, dto types.OrderDTO) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.Validate", trace.WithAttributes(orderAttr(dto.ID)))
	defer span.End()

	if err := s.inner.Validate(ctx, dto); err != nil {
		s.metrics.recordValidationFailure(ctx, err)
		return s.handleError(ctx, span, err, "order failed validation", slog.String("order.id", dto.ID.String()))
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*types.OrderDTO, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetByID", trace.WithAttributes(orderAttr(id)))
	defer span.End()

	s.logInfo(ctx, "loading order", slog.String("order.id", id.String()))
	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id.String()))
	}
	s.logInfo(ctx, "order loaded", slog.String("order.id", result.ID.String()), slog.String("status", result.Status.String()))
	return result, nil
}

func (s *Service) GetAll(ctx context.Context) ([]types.OrderDTO, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetAll")
	defer span.End()

	result, err := s.inner.GetAll(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	s.logInfo(ctx, "orders listed", slog.Int("count", len(result)))
	return result, nil
}

func (s *Service) Create(ctx context.Context, dto types.OrderDTO) (*types.OrderDTO, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Create",
		trace.WithAttributes(orderAttr(dto.ID), attribute.Int("order.items", len(dto.Items))))
	defer span.End()

	s.logInfo(ctx, "creating order", slog.String("order.id", dto.ID.String()), slog.String("customer.id", dto.CustomerID.String()))
	result, err := s.inner.Create(ctx, dto)
	if err != nil {
		s.metrics.recordValidationFailure(ctx, err)
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.String("order.id", dto.ID.String()))
	}
	span.SetAttributes(orderAttr(result.ID))
	s.metrics.recordCreated(ctx, result.Status)
	s.logInfo(ctx, "order created", slog.String("order.id", result.ID.String()), slog.String("status", result.Status.String()))
	return result, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, dto types.OrderDTO) (*types.OrderDTO, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Update", trace.WithAttributes(orderAttr(id)))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.String("order.id", id.String()))
	result, err := s.inner.Update(ctx, id, dto)
	if err != nil {
		s.metrics.recordValidationFailure(ctx, err)
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.String("order.id", id.String()))
	}
	s.metrics.recordUpdated(ctx, result.Status)
	s.logInfo(ctx, "order updated", slog.String("order.id", id.String()), slog.String("status", result.Status.String()))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.Delete", trace.WithAttributes(orderAttr(id)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.String("order.id", id.String()))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.String("order.id", id.String()))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.String("order.id", id.String()))
	return nil
}

func orderAttr(id uuid.UUID) attribute.KeyValue {
	return attribute.String("order.id", id.String())
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, level slog.Level, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}

// handleError records err on the span. Caller faults are logged at warn, everything else at error.
func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	level := slog.LevelError
	if isCallerFault(err) {
		level = slog.LevelWarn
	}
	s.logError(ctx, level, msg, err, attrs...)
	return err
}

func isCallerFault(err error) bool {
	return errors.Is(err, orderapp.ErrInvalidArgument) ||
		errors.Is(err, orderapp.ErrValidationFailed) ||
		errors.Is(err, orderapp.ErrNotFound)
}

type serviceMetrics struct {
	created            metric.Int64Counter
	updated            metric.Int64Counter
	deleted            metric.Int64Counter
	validationFailures metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders created"))
	updated, _ := m.Int64Counter("orders.service.updated", metric.WithDescription("Number of orders updated"))
	deleted, _ := m.Int64Counter("orders.service.deleted", metric.WithDescription("Number of orders deleted"))
	validationFailures, _ := m.Int64Counter("orders.service.validation_failures", metric.WithDescription("Number of orders rejected by validation"))
	return serviceMetrics{created: created, updated: updated, deleted: deleted, validationFailures: validationFailures}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.Status) {
	if m.created != nil {
		m.created.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", status.String())))
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status domain.Status) {
	if m.updated != nil {
		m.updated.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", status.String())))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.deleted != nil {
		m.deleted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordValidationFailure(ctx context.Context, err error) {
	if m.validationFailures != nil && errors.Is(err, orderapp.ErrValidationFailed) {
		m.validationFailures.Add(ctx, 1)
	}
}

var _ orderports.Service = (*Service)(nil)
