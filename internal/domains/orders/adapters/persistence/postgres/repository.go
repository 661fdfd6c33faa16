package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-orders-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository and migrates the orders table.
// Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) (*Repository, error) {
	repo := &Repository{db: db}
	if db != nil {
		if err := db.AutoMigrate(&orderRecord{}); err != nil {
			return nil, fmt.Errorf("migrate orders table: %w", err)
		}
	}
	return repo, nil
}

// orderRecord maps the order aggregate to a relational row. Items are owned by the order and
// stored inline as JSON.
type orderRecord struct {
	ID         uuid.UUID    `gorm:"primaryKey;column:id;type:uuid"`
	CustomerID uuid.UUID    `gorm:"column:customer_id;type:uuid;index"`
	Items      []itemRecord `gorm:"column:items;type:jsonb;serializer:json"`
	OrderDate  time.Time    `gorm:"column:order_date"`
	Status     string       `gorm:"column:status;type:varchar(32);index"`
	CreatedAt  time.Time    `gorm:"column:created_at;index"`
	UpdatedAt  time.Time    `gorm:"column:updated_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

type itemRecord struct {
	ProductID  uuid.UUID       `json:"productID"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Create inserts an order, replacing any row stored under the same identifier.
func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	return r.upsert(ctx, order)
}

// Update replaces the stored order, inserting it when absent.
func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	return r.upsert(ctx, order)
}

func (r *Repository) upsert(ctx context.Context, order *domain.Order) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if order == nil {
		return errors.New("order is nil")
	}
	if order.ID == uuid.Nil {
		return errors.New("order id is empty")
	}
	record := toRecord(order)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"customer_id": record.CustomerID,
				"items":       gorm.Expr("excluded.items"),
				"order_date":  record.OrderDate,
				"status":      record.Status,
				"updated_at":  gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error
}

// Get fetches an order by identifier.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// GetAll returns every stored order.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Delete removes an order by identifier. Deleting a missing order is a no-op.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&orderRecord{}, "id = ?", id).Error
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	var items []itemRecord
	if order.Items != nil {
		items = make([]itemRecord, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, itemRecord(item))
		}
	}
	return orderRecord{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Items:      items,
		OrderDate:  order.OrderDate,
		Status:     order.Status.String(),
	}
}

func (r orderRecord) toDomain() *domain.Order {
	var items []domain.OrderItem
	if r.Items != nil {
		items = make([]domain.OrderItem, 0, len(r.Items))
		for _, item := range r.Items {
			items = append(items, domain.OrderItem(item))
		}
	}
	return &domain.Order{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Items:      items,
		OrderDate:  r.OrderDate,
		Status:     domain.ParseStatus(r.Status),
	}
}
