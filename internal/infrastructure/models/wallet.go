package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type Wallet struct {
	ID                        uint            `gorm:"primaryKey"`
	UserID                    uint            `gorm:"not null;uniqueIndex"`
	Balance                   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	AutoReloadEnabled         bool            `gorm:"not null;default:false"`
	AutoReloadThreshold       null.String     `gorm:"type:decimal(10,2)"`
	AutoReloadAmount          null.String     `gorm:"type:decimal(10,2)"`
	AutoReloadPaymentMethodID null.Uint
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
