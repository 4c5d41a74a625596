package main

import (
	"fmt"
	"log"
	"os"

	"covicenter-backend/config"
	"covicenter-backend/models"
	"covicenter-backend/routes"
	"covicenter-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Center{},
		&models.SlotBooking{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	notify := services.NewNotifyService(db)
	notify.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(db, notify)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
