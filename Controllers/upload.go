package Controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/Services"
)

// UploadImage forwards a base64 data-URI to Cloudinary and returns the
// hosted URL.
func UploadImage(c *gin.Context) {
	var input struct {
		ImageData string `json:"imageData"`
		UserID    string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ImageData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image data provided"})
		return
	}
	if !strings.HasPrefix(input.ImageData, "data:image") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image format"})
		return
	}

	client := Services.NewCloudinaryClient()
	result, err := client.UploadImage(input.ImageData, "doctor_profiles")
	if err != nil {
		log.Println("Error uploading to Cloudinary:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Image upload failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":       result.SecureURL,
		"public_id": result.PublicID,
	})
}
