package quoterepo

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingQuoteDTO is the audit row recorded for every rate request. Rows
// are written by the quote query handler and only ever read for analysis,
// so the package carries no repository.
type ShippingQuoteDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	FromPostalCode string          `gorm:"column:from_postal_code"`
	ToPostalCode   string          `gorm:"column:to_postal_code"`
	FromCountry    string          `gorm:"column:from_country"`
	ToCountry      string          `gorm:"column:to_country"`
	WeightKg       decimal.Decimal `gorm:"column:weight_kg;type:numeric"`
	LengthCm       decimal.Decimal `gorm:"column:length_cm;type:numeric"`
	WidthCm        decimal.Decimal `gorm:"column:width_cm;type:numeric"`
	HeightCm       decimal.Decimal `gorm:"column:height_cm;type:numeric"`
	Type           int             `gorm:"column:type"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
}

// TableName specifies the database table name for quote audit rows.
func (ShippingQuoteDTO) TableName() string {
	return "shipping_quotes"
}
