// services/notify_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"covicenter-backend/models"
	"covicenter-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type NotifyService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewNotifyService(db *gorm.DB) *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &NotifyService{
		db:     db,
		client: client,
		from:   os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// Enabled reports whether Twilio credentials are configured. Without them
// every send is a logged no-op and bookings proceed normally.
func (s *NotifyService) Enabled() bool {
	return s.client != nil && s.from != ""
}

// StartScheduler schedules the daily reminder run at 9 AM
func (s *NotifyService) StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Booking reminder scheduler started")
	return c
}

// SendBookingConfirmation messages the user right after a successful booking
func (s *NotifyService) SendBookingConfirmation(user *models.User, center *models.Center, booking *models.SlotBooking) {
	if user.Phone == "" {
		return
	}
	message := fmt.Sprintf("Hi %s, your vaccination slot at %s is confirmed for %s.",
		user.Name, center.Name, booking.BookedTime.Format("02 Jan 2006 15:04"))
	s.send(user.Phone, message)
}

// SendDailyReminders messages every user with a booking dated tomorrow
func (s *NotifyService) SendDailyReminders() {
	log.Println("Starting daily booking reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayAfter := tomorrow.AddDate(0, 0, 1)

	type reminderRow struct {
		Name       string
		Phone      string
		CenterName string
		BookedTime time.Time
	}
	var rows []reminderRow
	err := s.db.Model(&models.SlotBooking{}).
		Select("users.name, users.phone, centers.name AS center_name, slot_bookings.booked_time").
		Joins("JOIN users ON users.id = slot_bookings.user_id").
		Joins("JOIN centers ON centers.id = slot_bookings.center_id").
		Where("slot_bookings.booked_date >= ? AND slot_bookings.booked_date < ?", tomorrow, dayAfter).
		Where("users.phone <> ''").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for _, r := range rows {
		message := fmt.Sprintf("Hi %s, reminder: your vaccination slot at %s is tomorrow at %s.",
			r.Name, r.CenterName, r.BookedTime.Format("15:04"))
		s.send(r.Phone, message)
	}

	log.Printf("Daily booking reminder processing completed (%d bookings)", len(rows))
}

func (s *NotifyService) send(to, body string) {
	if !s.Enabled() {
		log.Printf("Twilio not configured, skipping SMS to %s", to)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send SMS to %s: %v", to, err)
	}
}
