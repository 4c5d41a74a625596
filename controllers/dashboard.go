package controllers

import (
	"net/http"

	"covicenter-backend/models"
	"covicenter-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type CenterStats struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bookings int64  `json:"bookings"`
}

// GetDashboardOverview returns the center list plus aggregate figures
// for the admin dashboard
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	var centers []models.Center
	if err := dc.DB.Find(&centers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve centers")
		return
	}

	var totalCenters int64
	dc.DB.Model(&models.Center{}).Count(&totalCenters)

	var totalBookings int64
	dc.DB.Model(&models.SlotBooking{}).Count(&totalBookings)

	var remainingSlots int64
	dc.DB.Model(&models.Center{}).
		Select("COALESCE(SUM(slots_per_day), 0)").Scan(&remainingSlots)

	var totalUsers int64
	dc.DB.Model(&models.User{}).Where("is_admin = ?", false).Count(&totalUsers)

	// Bookings per center
	var perCenter []CenterStats
	dc.DB.Raw(`
        SELECT c.id, c.name, COUNT(b.id) AS bookings
        FROM centers c
        LEFT JOIN slot_bookings b ON b.center_id = c.id AND b.deleted_at IS NULL
        WHERE c.deleted_at IS NULL
        GROUP BY c.id, c.name
    `).Scan(&perCenter)

	c.JSON(http.StatusOK, gin.H{
		"centers": centers,
		"stats": gin.H{
			"totalCenters":   totalCenters,
			"totalBookings":  totalBookings,
			"totalUsers":     totalUsers,
			"remainingSlots": remainingSlots,
		},
		"bookingsPerCenter": perCenter,
	})
}
