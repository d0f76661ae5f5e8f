package Routes

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/Controllers"
	"github.com/DigesSuvagiya/meditrack-backend/Middleware"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	auth := router.Group("/api/auth")
	auth.Use(Middleware.ResolveIdentity())
	{
		auth.POST("/register", Controllers.Register)
		auth.POST("/login", Controllers.Login)
		auth.GET("/profile", Controllers.GetProfile)
		auth.PUT("/profile", Controllers.UpdateProfile)
		auth.GET("/doctors/search", Controllers.SearchDoctors)
		auth.POST("/fcm-token", Controllers.SaveFcmToken)

		auth.POST("/appointments", Controllers.BookAppointment)
		auth.GET("/appointments/patient/:patientId", Controllers.FetchPatientAppointments)
		auth.GET("/appointments/doctor/:doctorId", Controllers.FetchDoctorAppointments)
		auth.PATCH("/appointments/:id", Controllers.UpdateAppointmentStatus)
		auth.DELETE("/appointments/:id", Controllers.CancelAppointment)
	}

	patient := router.Group("/api/patient")
	{
		patient.GET("/profile", Controllers.GetPatientProfile)
		patient.GET("/doctor-patients/:doctorId", Controllers.FetchDoctorPatients)
		patient.GET("/export/:doctorId", Controllers.ExportDoctorPatients)
		patient.GET("/health-summary/:phone", Controllers.HealthSummary)
		patient.GET("/:id", Controllers.GetPatientByID)
		patient.POST("/add", Controllers.AddPatient)
		patient.DELETE("/:id", Controllers.DeletePatient)
	}

	upload := router.Group("/api/upload")
	upload.Use(Middleware.ResolveIdentity())
	{
		upload.POST("/image", Controllers.UploadImage)
	}

	medicines := router.Group("/api/medicines")
	{
		medicines.GET("/search", Controllers.SearchMedicines)
	}
}
