package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
)

type TourInput struct {
	Name            string   `json:"name" binding:"required"`
	NameAr          string   `json:"name_ar"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" binding:"required"`
	DiscountedPrice *float64 `json:"discounted_price"`
	DurationHours   int      `json:"duration_hours"`
	DestinationID   *uint    `json:"destination_id"`
	Featured        bool     `json:"featured"`
	ImageURL        string   `json:"image_url"`
}

// GET /api/tours
func GetTours(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Tour{})

		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}
		if dest := c.Query("destination_id"); dest != "" {
			query = query.Where("destination_id = ?", dest)
		}
		query, err := applyPriceBand(c, query, "price")
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		var tours []models.Tour
		if err := query.Order("created_at DESC").Find(&tours).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch tours", err))
			return
		}
		c.JSON(http.StatusOK, tours)
	}
}

// GET /api/tours/:id
func GetTourByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tour models.Tour
		if err := db.First(&tour, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Tour not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch tour", err))
			return
		}
		c.JSON(http.StatusOK, tour)
	}
}

// POST /api/tours (admin)
func CreateTour(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TourInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		tour := models.Tour{
			Name:            input.Name,
			NameAr:          input.NameAr,
			Description:     input.Description,
			Price:           input.Price,
			DiscountedPrice: input.DiscountedPrice,
			DurationHours:   input.DurationHours,
			DestinationID:   input.DestinationID,
			Featured:        input.Featured,
			ImageURL:        input.ImageURL,
		}
		if err := db.Create(&tour).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create tour", err))
			return
		}
		c.JSON(http.StatusCreated, tour)
	}
}

// PUT /api/tours/:id (admin)
func UpdateTour(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tour models.Tour
		if err := db.First(&tour, "id = ?", c.Param("id")).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Tour not found"))
			return
		}

		var input TourInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		tour.Name = input.Name
		tour.NameAr = input.NameAr
		tour.Description = input.Description
		tour.Price = input.Price
		tour.DiscountedPrice = input.DiscountedPrice
		tour.DurationHours = input.DurationHours
		tour.DestinationID = input.DestinationID
		tour.Featured = input.Featured
		tour.ImageURL = input.ImageURL

		if err := db.Save(&tour).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update tour", err))
			return
		}
		c.JSON(http.StatusOK, tour)
	}
}

// DELETE /api/tours/:id (admin)
func DeleteTour(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Tour{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete tour", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Tour not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Tour deleted"})
	}
}
