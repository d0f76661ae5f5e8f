package Controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/Models"
)

const doctorSearchLimit = 10

func SearchDoctors(c *gin.Context) {
	term := c.Query("term")
	specialization := c.Query("specialization")

	doctors, err := Models.Users.SearchDoctors(c.Request.Context(), term, specialization, doctorSearchLimit)
	if err != nil {
		log.Println("Error searching doctors:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doctors)
}
