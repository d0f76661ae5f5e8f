package Controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/Services"
)

// SearchMedicines forwards the keyword to the search API and returns the
// upstream response untouched.
func SearchMedicines(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Medicine name is required"})
		return
	}

	client := Services.NewSerpAPIClient()
	results, err := client.SearchMedicine(name)
	if err != nil {
		log.Println("API Error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch medicine platforms",
			"details": err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "application/json", results)
}
