package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteInput struct {
	PackageID uint `json:"package_id" binding:"required"`
}

// currentUserID reads the authenticated user from the request context. A
// token whose claims carry no usable user_id is treated as unauthenticated.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	userID, ok := v.(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

// GET /api/favorites
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			apierrors.Respond(c, apierrors.E(apierrors.Unauthorized, "Login is required"))
			return
		}

		var favorites []models.Favorite
		if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch favorites", err))
			return
		}
		c.JSON(http.StatusOK, favorites)
	}
}

// POST /api/favorites
// Re-adding the same package is not an error.
func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			apierrors.Respond(c, apierrors.E(apierrors.Unauthorized, "Login is required"))
			return
		}

		var input FavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		favorite := models.Favorite{UserID: userID, PackageID: input.PackageID}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to add favorite", err))
			return
		}
		c.JSON(http.StatusCreated, favorite)
	}
}

// DELETE /api/favorites/:packageID
func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			apierrors.Respond(c, apierrors.E(apierrors.Unauthorized, "Login is required"))
			return
		}

		result := db.Where("user_id = ? AND package_id = ?", userID, c.Param("packageID")).
			Delete(&models.Favorite{})
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to remove favorite", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Favorite not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
	}
}
