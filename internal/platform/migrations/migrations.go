package migrations

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the orders schema.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&orderRecord{})
}

// Order schema mirrors the orders Postgres adapter.
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
