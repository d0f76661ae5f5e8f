package Controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/Models"
	"github.com/DigesSuvagiya/meditrack-backend/Utils/Token"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// callerID prefers the identity resolved from the token and falls back to
// the client-supplied id. Fallback callers are assumed to be doctors.
func callerID(c *gin.Context, fallback string) (string, string) {
	if id, ok := c.Get("userID"); ok {
		role, _ := c.Get("userRole")
		roleStr, _ := role.(string)
		return id.(string), roleStr
	}
	return fallback, RoleDoctor
}

type RegisterInput struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`

	// Doctor fields
	LicenseNo  string `json:"lic_no"`
	Spec       string `json:"spec"`
	Experience int    `json:"experience"`
	Bio        string `json:"bio"`

	// Patient fields
	DOB                    string `json:"dob"`
	Gender                 string `json:"gender"`
	BloodGroup             string `json:"bloodGroup"`
	Address                string `json:"address"`
	EmergencyContactName   string `json:"emergencyContactName"`
	EmergencyContactNumber string `json:"emergencyContactNumber"`
}

func (input *RegisterInput) validate() string {
	if input.Fullname == "" || input.Email == "" || input.Phone == "" || input.Password == "" || input.Role == "" {
		return "Please provide all required fields"
	}
	if len(input.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	switch input.Role {
	case RoleDoctor:
		if input.LicenseNo == "" || input.Spec == "" || input.Experience <= 0 || input.Bio == "" {
			return "Please provide all doctor fields"
		}
	case RolePatient:
		if input.DOB == "" || input.Gender == "" || input.BloodGroup == "" || input.Address == "" ||
			input.EmergencyContactName == "" || input.EmergencyContactNumber == "" {
			return "Please provide all patient fields"
		}
		if input.Gender != "male" && input.Gender != "female" && input.Gender != "other" {
			return "Invalid gender"
		}
	default:
		return "Role must be doctor or patient"
	}
	return ""
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	ctx := c.Request.Context()
	email := Models.NormalizeEmail(input.Email)

	if _, err := Models.Users.FindByEmail(ctx, email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already registered"})
		return
	} else if err != Models.ErrNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	hashed, err := Models.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := Models.User{
		Fullname: input.Fullname,
		Email:    email,
		Phone:    input.Phone,
		Password: hashed,
		Role:     input.Role,
	}
	switch input.Role {
	case RoleDoctor:
		user.Doctor = &Models.DoctorProfile{
			LicenseNo:  input.LicenseNo,
			Spec:       input.Spec,
			Experience: input.Experience,
			Bio:        input.Bio,
		}
	case RolePatient:
		user.Patient = &Models.PatientProfile{
			DOB:                    input.DOB,
			Gender:                 input.Gender,
			BloodGroup:             input.BloodGroup,
			Address:                input.Address,
			EmergencyContactName:   input.EmergencyContactName,
			EmergencyContactNumber: input.EmergencyContactNumber,
		}
	}

	if err := Models.Users.Create(ctx, &user); err != nil {
		if err == Models.ErrDuplicate {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already registered"})
			return
		}
		log.Println("Registration error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, err := Models.Users.FindByEmailAndRole(ctx, Models.NormalizeEmail(input.Email), input.Role)
	if err == Models.ErrNotFound {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials or role"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := Models.VerifyPassword(input.Password, user.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := Token.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"_id":      user.ID,
			"fullname": user.Fullname,
			"email":    user.Email,
			"phone":    user.Phone,
		},
		"userRole": user.Role,
	})
}

func GetProfile(c *gin.Context) {
	userID, _ := callerID(c, c.Query("userId"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
		return
	}

	user, err := Models.Users.FindByID(c.Request.Context(), userID)
	if err == Models.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Doctor not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func UpdateProfile(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
		Models.DoctorProfileUpdate
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := callerID(c, input.UserID)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
		return
	}

	user, err := Models.Users.UpdateDoctorProfile(c.Request.Context(), userID, input.DoctorProfileUpdate)
	if err == Models.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Doctor not found"})
		return
	}
	if err != nil {
		log.Println("Error updating doctor profile:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func SaveFcmToken(c *gin.Context) {
	var input struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required"})
		return
	}

	userID, _ := callerID(c, input.UserID)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
		return
	}

	deviceToken := Models.DeviceToken{UserID: userID, Value: input.Token}
	if err := Models.DeviceTokens.Save(c.Request.Context(), &deviceToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token saved"})
}
