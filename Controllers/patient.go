package Controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/Models"
)

// GetPatientProfile reads the users collection, not patient_checks: a
// patient's account profile and their visit records are separate documents.
func GetPatientProfile(c *gin.Context) {
	phone := c.Query("phone")
	userID := c.Query("userId")

	if phone == "" && userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phone number or User ID is required"})
		return
	}

	ctx := c.Request.Context()
	var user *Models.User
	var err error
	if userID != "" {
		user, err = Models.Users.FindByID(ctx, userID)
	} else {
		user, err = Models.Users.FindByPhone(ctx, phone)
	}
	if err == Models.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	if err != nil {
		log.Println("Server error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func GetPatientByID(c *gin.Context) {
	check, err := Models.PatientChecks.FindByID(c.Request.Context(), c.Param("id"))
	if err == Models.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving patient", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, check)
}

const patientIDAttempts = 5

func AddPatient(c *gin.Context) {
	var check Models.PatientCheck
	if err := c.ShouldBindJSON(&check); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if check.Fullname == "" || check.DOB == "" || check.Gender == "" || check.Phone == "" ||
		check.Email == "" || check.DoctorID == "" || check.DoctorName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields."})
		return
	}
	if check.Gender != "male" && check.Gender != "female" && check.Gender != "other" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid gender"})
		return
	}
	if check.VisitDate == "" {
		check.VisitDate = time.Now().Format(time.RFC3339)
	}

	ctx := c.Request.Context()
	var err error
	for attempt := 0; attempt < patientIDAttempts; attempt++ {
		check.PatientID = Models.GeneratePatientID()
		err = Models.PatientChecks.Create(ctx, &check)
		if err != Models.ErrDuplicate {
			break
		}
	}
	if err != nil {
		log.Println("Error adding patient:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding patient", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Patient added successfully!", "patient": check})
}

func DeletePatient(c *gin.Context) {
	err := Models.PatientChecks.Delete(c.Request.Context(), c.Param("id"))
	if err == Models.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	if err != nil {
		log.Println("Error deleting patient:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting patient", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

func FetchDoctorPatients(c *gin.Context) {
	checks, err := Models.PatientChecks.FindByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching patients", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, checks)
}

func HealthSummary(c *gin.Context) {
	checks, err := Models.PatientChecks.FindByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching health summaries", "error": err.Error()})
		return
	}
	if len(checks) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No patients found with this phone number"})
		return
	}

	summaries := make([]Models.HealthSummary, 0, len(checks))
	for _, check := range checks {
		summaries = append(summaries, check.ToHealthSummary())
	}
	c.JSON(http.StatusOK, summaries)
}
