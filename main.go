package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/CronJobs"
	"github.com/DigesSuvagiya/meditrack-backend/FirebaseMessaging"
	"github.com/DigesSuvagiya/meditrack-backend/Models"
	"github.com/DigesSuvagiya/meditrack-backend/Routes"
)

func main() {
	Models.ConnectDatabase()
	FirebaseMessaging.Setup()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "x-auth-token"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router)

	reminderService := CronJobs.NewAppointmentReminder(Models.Appointments, Models.DeviceTokens)
	reminderService.StartReminderCron()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("Server running on port %s", port)
	router.Run(":" + port)
}
