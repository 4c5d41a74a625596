package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SlotBooking struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	CenterID uuid.UUID `gorm:"type:uuid;index;not null" json:"centerId"`

	BookedDate time.Time `gorm:"not null" json:"bookedDate"`
	BookedTime time.Time `gorm:"not null" json:"bookedTime"`

	gorm.Model `json:"-"`
}

func (b *SlotBooking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.BookedTime.IsZero() {
		b.BookedTime = time.Now()
	}
	return
}
