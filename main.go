package main

import (
	"fmt"
	"log"
	"os"

	"autocare-backend/config"
	"autocare-backend/models"
	"autocare-backend/routes"
	"autocare-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Admin{},
		&models.Service{},
		&models.Booking{},
	)
}

func main() {
	// "app seed" provisions the default admin and service catalog
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := config.SeedDatabase(config.DB); err != nil {
			log.Fatalf("Error seeding database: %v", err)
		}
		log.Println("Database seeded successfully")
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	digest := services.NewDigestService(config.DB)
	digest.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
