package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/auth"
	"github.com/madoxlx/egtravel-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserInput struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
}

// POST /api/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			apierrors.Respond(c, apierrors.E(apierrors.Conflict, "Email already registered"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to hash password", err))
			return
		}

		user := models.User{
			Email:        input.Email,
			PasswordHash: string(hash),
			FullName:     input.FullName,
			Phone:        input.Phone,
			Role:         "user",
		}
		if err := db.Create(&user).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create user", err))
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Token generation failed", err))
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
	}
}

// POST /api/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.Unauthorized, "Invalid email or password"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.Unauthorized, "Invalid email or password"))
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Token generation failed", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// POST /api/logout
// Tokens are stateless; the client discards its copy.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /api/user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var user models.User

		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "User not found"))
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// PATCH /api/user
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var user models.User

		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "User not found"))
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, err.Error()))
			return
		}

		updates := make(map[string]interface{})
		if input.FullName != nil {
			updates["full_name"] = *input.FullName
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update user", err))
				return
			}
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "full_name", "phone", "role", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch users", err))
			return
		}

		c.JSON(http.StatusOK, users)
	}
}
