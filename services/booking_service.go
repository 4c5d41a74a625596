// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"covicenter-backend/models"
	"covicenter-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCenterNotFound    = errors.New("center not found")
	ErrCapacityExhausted = errors.New("no slots available for this center")
	ErrOutOfWindow       = errors.New("requested time is outside the center's operating hours")
	ErrInvalidSlot       = errors.New("invalid slot date or time")
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// BookSlot reserves one slot at the center for the given date and time.
// The booking insert and the capacity decrement are applied in a single
// transaction; the decrement is conditional on remaining capacity, so the
// counter never goes negative even under concurrent requests.
func (s *BookingService) BookSlot(userID, centerID uuid.UUID, dateStr, timeStr string) (*models.SlotBooking, error) {
	var center models.Center
	if err := s.db.First(&center, "id = ?", centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCenterNotFound
		}
		return nil, err
	}

	if center.SlotsPerDay <= 0 {
		return nil, ErrCapacityExhausted
	}

	bookedAt, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: expected YYYY-MM-DD and HH:MM", ErrInvalidSlot)
	}

	ok, err := utils.WithinWindow(bookedAt, center.OpenTime, center.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	if !ok {
		return nil, ErrOutOfWindow
	}

	booking := models.SlotBooking{
		UserID:     userID,
		CenterID:   center.ID,
		BookedDate: utils.BeginningOfDay(bookedAt),
		BookedTime: bookedAt,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Center{}).
			Where("id = ? AND slots_per_day > 0", center.ID).
			UpdateColumn("slots_per_day", gorm.Expr("slots_per_day - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCapacityExhausted
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// BookingDetail is a booking joined with its center for display
type BookingDetail struct {
	ID            uuid.UUID `json:"id"`
	CenterID      uuid.UUID `json:"centerId"`
	CenterName    string    `json:"centerName"`
	CenterAddress string    `json:"centerAddress"`
	BookedDate    time.Time `json:"bookedDate"`
	BookedTime    time.Time `json:"bookedTime"`
}

// ListUserBookings returns every booking owned by the user
func (s *BookingService) ListUserBookings(userID uuid.UUID) ([]BookingDetail, error) {
	var details []BookingDetail
	err := s.db.Model(&models.SlotBooking{}).
		Select("slot_bookings.id, slot_bookings.center_id, centers.name AS center_name, centers.address AS center_address, slot_bookings.booked_date, slot_bookings.booked_time").
		Joins("JOIN centers ON centers.id = slot_bookings.center_id").
		Where("slot_bookings.user_id = ?", userID).
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
