package routes

import (
	"os"
	"strings"

	"covicenter-backend/config"
	"covicenter-backend/controllers"
	"covicenter-backend/services"
	"covicenter-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, notify *services.NotifyService) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := controllers.NewAuthController(db)
	centerController := controllers.NewCenterController(db)
	bookingController := controllers.NewBookingController(db, services.NewBookingService(db), notify)
	dashboardController := controllers.NewDashboardController(db)

	// Public credential routes
	r.POST("/signup", authController.Register)
	r.POST("/login", authController.Login)
	r.POST("/admin_login", authController.AdminLogin)
	r.POST("/admin_signup", authController.AdminRegister)
	r.GET("/logout", authController.Logout)
	r.POST("/logout", authController.Logout)

	// Authenticated routes
	authed := r.Group("")
	authed.Use(utils.AuthMiddleware(db))
	{
		authed.GET("/", centerController.Home)
		authed.GET("/me", authController.Me)

		// Booking routes are for regular users only
		user := authed.Group("", utils.UserRequired())
		{
			user.GET("/book_slot/:id", centerController.GetCenter)
			user.POST("/book_slot/:id", bookingController.BookSlot)
			user.GET("/booking_details", bookingController.MyBookings)
		}

		// Center management is admin-only, delete included
		admin := authed.Group("", utils.AdminRequired())
		{
			admin.GET("/admin_dashboard", dashboardController.GetDashboardOverview)
			admin.POST("/admin_dashboard", centerController.CreateCenter)
			admin.GET("/edit_center/:id", centerController.GetCenter)
			admin.POST("/edit_center/:id", centerController.UpdateCenter)
			admin.GET("/delete_center/:id", centerController.DeleteCenter)
			admin.POST("/delete_center/:id", centerController.DeleteCenter)
		}
	}

	return r
}
