// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"

	"covicenter-backend/models"
	"covicenter-backend/services"
	"covicenter-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingController struct {
	DB       *gorm.DB
	Bookings *services.BookingService
	Notify   *services.NotifyService
}

func NewBookingController(db *gorm.DB, bookings *services.BookingService, notify *services.NotifyService) *BookingController {
	return &BookingController{DB: db, Bookings: bookings, Notify: notify}
}

type BookSlotInput struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM
}

// BookSlot reserves a slot at the center for the current user
func (bc *BookingController) BookSlot(c *gin.Context) {
	userUUID, err := uuid.Parse(c.GetString("userId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	centerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid center ID format")
		return
	}

	var input BookSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Bookings.BookSlot(userUUID, centerUUID, input.Date, input.Time)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCenterNotFound):
			utils.RespondWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrCapacityExhausted):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrInvalidSlot):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrOutOfWindow):
			utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to book slot")
		}
		return
	}

	go bc.sendConfirmation(userUUID, centerUUID, booking)

	c.JSON(http.StatusCreated, gin.H{"booking": booking, "redirect": "/"})
}

// MyBookings lists every booking owned by the current user
func (bc *BookingController) MyBookings(c *gin.Context) {
	userUUID, err := uuid.Parse(c.GetString("userId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	bookings, err := bc.Bookings.ListUserBookings(userUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	if bookings == nil {
		bookings = []services.BookingDetail{}
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (bc *BookingController) sendConfirmation(userID, centerID uuid.UUID, booking *models.SlotBooking) {
	var user models.User
	if err := bc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return
	}
	var center models.Center
	if err := bc.DB.First(&center, "id = ?", centerID).Error; err != nil {
		return
	}
	bc.Notify.SendBookingConfirmation(&user, &center, booking)
}
