// controllers/center.go
package controllers

import (
	"errors"
	"net/http"

	"covicenter-backend/models"
	"covicenter-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CenterController struct {
	DB *gorm.DB
}

func NewCenterController(db *gorm.DB) *CenterController {
	return &CenterController{DB: db}
}

// CenterInput is shared by create and edit: both take the full field set
type CenterInput struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	OpenTime  string `json:"openTime" binding:"required"`
	CloseTime string `json:"closeTime" binding:"required"`
}

func validateHours(c *gin.Context, input *CenterInput) bool {
	open, err := utils.ParseClock(input.OpenTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	close, err := utils.ParseClock(input.CloseTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	if close <= open {
		utils.RespondWithError(c, http.StatusBadRequest, "Closing time must be after opening time")
		return false
	}
	return true
}

// Home routes the caller the way the landing page does: admins to the
// dashboard, regular users to the center listing
func (cc *CenterController) Home(c *gin.Context) {
	if c.GetBool("isAdmin") {
		c.JSON(http.StatusOK, gin.H{"redirect": "/admin_dashboard"})
		return
	}

	var centers []models.Center
	if err := cc.DB.Find(&centers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve centers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"centers": centers})
}

// GetCenter returns one center, for the booking and edit forms
func (cc *CenterController) GetCenter(c *gin.Context) {
	centerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid center ID format")
		return
	}

	var center models.Center
	if err := cc.DB.First(&center, "id = ?", centerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Center not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, center)
}

// CreateCenter adds a vaccination center with the default daily capacity
func (cc *CenterController) CreateCenter(c *gin.Context) {
	var input CenterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !validateHours(c, &input) {
		return
	}

	center := models.Center{
		Name:        input.Name,
		Address:     input.Address,
		OpenTime:    input.OpenTime,
		CloseTime:   input.CloseTime,
		SlotsPerDay: models.DefaultSlotsPerDay,
	}

	if err := cc.DB.Create(&center).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create center")
		return
	}

	c.JSON(http.StatusCreated, center)
}

// UpdateCenter overwrites name, address and operating hours in place
func (cc *CenterController) UpdateCenter(c *gin.Context) {
	centerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid center ID format")
		return
	}

	var input CenterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !validateHours(c, &input) {
		return
	}

	var center models.Center
	if err := cc.DB.First(&center, "id = ?", centerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Center not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	center.Name = input.Name
	center.Address = input.Address
	center.OpenTime = input.OpenTime
	center.CloseTime = input.CloseTime

	if err := cc.DB.Save(&center).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update center")
		return
	}

	c.JSON(http.StatusOK, center)
}

// DeleteCenter removes a center and its bookings in one transaction,
// so no orphaned bookings are left behind
func (cc *CenterController) DeleteCenter(c *gin.Context) {
	centerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid center ID format")
		return
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", centerUUID).Delete(&models.Center{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("center_id = ?", centerUUID).Delete(&models.SlotBooking{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Center not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete center")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Center deleted successfully", "redirect": "/admin_dashboard"})
}
