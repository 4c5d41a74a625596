// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"covicenter-backend/models"
	"covicenter-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type RegisterInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminRegisterInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	InviteCode      string `json:"inviteCode" binding:"required"`
}

// Register creates a regular user account and starts a session
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Password != input.ConfirmPassword {
		utils.RespondWithError(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Email is unique across all users, admin or not
	var existingUser models.User
	result := ac.DB.Where("email = ?", input.Email).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password, // Hashed in BeforeCreate hook
		IsAdmin:  false,
	}

	if err := ac.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	ac.startSession(c, http.StatusCreated, &newUser)
}

// Login authenticates a regular user. Admin accounts never match here.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	err := ac.DB.Where("email = ? AND is_admin = ?", strings.TrimSpace(input.Email), false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	ac.startSession(c, http.StatusOK, &user)
}

// AdminLogin authenticates an existing admin account. Unknown emails are
// rejected: admin accounts are created only through AdminRegister with the
// invite code, never provisioned implicitly at login.
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var admin models.User
	err := ac.DB.Where("email = ? AND is_admin = ?", strings.TrimSpace(input.Email), true).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, admin.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	ac.startSession(c, http.StatusOK, &admin)
}

// AdminRegister creates an admin account, gated by ADMIN_SIGNUP_CODE
func (ac *AuthController) AdminRegister(c *gin.Context) {
	var input AdminRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	code := os.Getenv("ADMIN_SIGNUP_CODE")
	if code == "" || input.InviteCode != code {
		utils.RespondWithError(c, http.StatusForbidden, "Invalid invite code")
		return
	}

	if input.Password != input.ConfirmPassword {
		utils.RespondWithError(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	var existingUser models.User
	result := ac.DB.Where("email = ?", input.Email).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newAdmin := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		IsAdmin:  true,
	}

	if err := ac.DB.Create(&newAdmin).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	ac.startSession(c, http.StatusCreated, &newAdmin)
}

// Me returns the current user from the session
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetString("userId")

	var user models.User
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the session cookie unconditionally
func (ac *AuthController) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": "/login"})
}

func (ac *AuthController) startSession(c *gin.Context, status int, user *models.User) {
	token, err := utils.GenerateToken(user.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	utils.SetSessionCookie(c, token)

	redirect := "/"
	if user.IsAdmin {
		redirect = "/admin_dashboard"
	}

	c.JSON(status, gin.H{
		"token":    token,
		"redirect": redirect,
		"user": gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"name":    user.Name,
			"isAdmin": user.IsAdmin,
		},
	})
}
