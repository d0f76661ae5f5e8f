package Controllers

import (
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/Models"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

type BookAppointmentInput struct {
	DoctorID      string `json:"doctorId"`
	PatientID     string `json:"patientId"`
	DoctorName    string `json:"doctorName"`
	PatientName   string `json:"patientName"`
	PatientMobile string `json:"patientMobile"`
	Date          string `json:"date"`
	Status        string `json:"status"`
}

func BookAppointment(c *gin.Context) {
	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.DoctorID == "" || input.PatientID == "" || input.PatientName == "" ||
		input.PatientMobile == "" || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if !mobilePattern.MatchString(input.PatientMobile) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter a valid 10-digit mobile number"})
		return
	}
	if input.Status == "" {
		input.Status = Models.AppointmentScheduled
	}
	if !Models.ValidAppointmentStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid appointment status"})
		return
	}

	appointment := Models.Appointment{
		DoctorID:      input.DoctorID,
		PatientID:     input.PatientID,
		DoctorName:    input.DoctorName,
		PatientName:   input.PatientName,
		PatientMobile: input.PatientMobile,
		Date:          input.Date,
		Status:        input.Status,
	}

	if err := Models.Appointments.Create(c.Request.Context(), &appointment); err != nil {
		log.Println("Error booking appointment:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error booking appointment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

func FetchPatientAppointments(c *gin.Context) {
	appointments, err := Models.Appointments.FindByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching appointments", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func FetchDoctorAppointments(c *gin.Context) {
	appointments, err := Models.Appointments.FindByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching appointments", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func UpdateAppointmentStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}
	if !Models.ValidAppointmentStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid appointment status"})
		return
	}

	appointment, err := Models.Appointments.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err == Models.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating appointment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func CancelAppointment(c *gin.Context) {
	err := Models.Appointments.Delete(c.Request.Context(), c.Param("id"))
	if err == Models.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error cancelling appointment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}
