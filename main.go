package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kurniasari-api/config"
	"kurniasari-api/routes"
	"kurniasari-api/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	config.LoadConfig()
	config.InitLogger()
	defer config.Log.Sync()

	// connect db + redis
	config.ConnectDatabase()
	config.ConnectRedis()

	// init router
	r := gin.Default() // sudah ada Logger & Recovery

	// PASANG CORS SEBELUM ROUTES
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.App.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// routes
	routes.RegisterRoutes(r)

	// seed data
	seeders.Seed()

	r.Run(":" + config.App.Port)
}
