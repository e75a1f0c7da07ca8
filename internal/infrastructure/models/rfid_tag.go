package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type RFIDTag struct {
	ID        uint      `gorm:"primaryKey"`
	VehicleID null.Uint `gorm:"index"`
	TagNumber string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status    string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
}
