package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/models"
)

type RegisterInput struct {
	Provider string `json:"provider"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Provider string `json:"provider"`
	IDToken  string `json:"id_token"`
}

// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}
		if input.Provider == "" || input.Email == "" || input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already registered"})
			return
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		user := models.User{
			Provider: input.Provider,
			Email:    input.Email,
			Name:     input.Name,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// POST /login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if input.Email == "" || input.Provider == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or provider"})
			return
		}

		// When the Firebase verifier is configured the provider token must
		// check out and belong to the same email.
		if input.IDToken != "" {
			if verified := verifyIDToken(c.Request.Context(), input.IDToken); verified != "" && verified != input.Email {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token email mismatch"})
				return
			}
		}

		var user models.User
		if err := db.Where("email = ? AND provider = ?", input.Email, input.Provider).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			}
			return
		}

		token, err := IssueToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"user":         gin.H{"email": user.Email, "name": user.Name},
		})
	}
}

// GET /verify
func Verify() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetUint("user_id")

		var body struct {
			UserID uint `json:"user_id"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.UserID != callerID {
			c.JSON(http.StatusUnauthorized, gin.H{"message": callerID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Authorized"})
	}
}

// IssueToken signs a 24h HS256 bearer token for the given user.
func IssueToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
