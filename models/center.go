package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultSlotsPerDay = 10

type Center struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `gorm:"not null" json:"address"`

	// Operating hours in 24h HH:MM form, e.g. "09:00" / "17:00"
	OpenTime  string `gorm:"type:varchar(5);not null" json:"openTime"`
	CloseTime string `gorm:"type:varchar(5);not null" json:"closeTime"`

	SlotsPerDay int `gorm:"not null;default:10" json:"slotsPerDay"`

	Bookings []SlotBooking `gorm:"foreignKey:CenterID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Center) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
