package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
)

type TransportationInput struct {
	Name            string   `json:"name" binding:"required"`
	NameAr          string   `json:"name_ar"`
	VehicleType     string   `json:"vehicle_type"`
	Capacity        int      `json:"capacity"`
	Price           float64  `json:"price" binding:"required"`
	DiscountedPrice *float64 `json:"discounted_price"`
	Featured        bool     `json:"featured"`
}

type VisaInput struct {
	Title           string   `json:"title" binding:"required"`
	TitleAr         string   `json:"title_ar"`
	CountryID       *uint    `json:"country_id"`
	Price           float64  `json:"price" binding:"required"`
	DiscountedPrice *float64 `json:"discounted_price"`
	ProcessingDays  int      `json:"processing_days"`
	Requirements    string   `json:"requirements"`
}

// GET /api/transportations
func GetTransportations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Transportation{})
		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}
		query, err := applyPriceBand(c, query, "price")
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		var list []models.Transportation
		if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch transportations", err))
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/transportations/:id
func GetTransportationByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var t models.Transportation
		if err := db.First(&t, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Transportation not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch transportation", err))
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// POST /api/transportations (admin)
func CreateTransportation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TransportationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		t := models.Transportation{
			Name:            input.Name,
			NameAr:          input.NameAr,
			VehicleType:     input.VehicleType,
			Capacity:        input.Capacity,
			Price:           input.Price,
			DiscountedPrice: input.DiscountedPrice,
			Featured:        input.Featured,
		}
		if err := db.Create(&t).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create transportation", err))
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

// PUT /api/transportations/:id (admin)
func UpdateTransportation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var t models.Transportation
		if err := db.First(&t, "id = ?", c.Param("id")).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Transportation not found"))
			return
		}

		var input TransportationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		t.Name = input.Name
		t.NameAr = input.NameAr
		t.VehicleType = input.VehicleType
		t.Capacity = input.Capacity
		t.Price = input.Price
		t.DiscountedPrice = input.DiscountedPrice
		t.Featured = input.Featured

		if err := db.Save(&t).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update transportation", err))
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// DELETE /api/transportations/:id (admin)
func DeleteTransportation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Transportation{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete transportation", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Transportation not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transportation deleted"})
	}
}

// GET /api/visas
func GetVisas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Visa{})
		if country := c.Query("country_id"); country != "" {
			query = query.Where("country_id = ?", country)
		}

		var visas []models.Visa
		if err := query.Order("created_at DESC").Find(&visas).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch visas", err))
			return
		}
		c.JSON(http.StatusOK, visas)
	}
}

// GET /api/visas/:id
func GetVisaByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var visa models.Visa
		if err := db.First(&visa, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Visa not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch visa", err))
			return
		}
		c.JSON(http.StatusOK, visa)
	}
}

// POST /api/visas (admin)
func CreateVisa(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VisaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		visa := models.Visa{
			Title:           input.Title,
			TitleAr:         input.TitleAr,
			CountryID:       input.CountryID,
			Price:           input.Price,
			DiscountedPrice: input.DiscountedPrice,
			ProcessingDays:  input.ProcessingDays,
			Requirements:    input.Requirements,
		}
		if err := db.Create(&visa).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create visa", err))
			return
		}
		c.JSON(http.StatusCreated, visa)
	}
}

// PUT /api/visas/:id (admin)
func UpdateVisa(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var visa models.Visa
		if err := db.First(&visa, "id = ?", c.Param("id")).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Visa not found"))
			return
		}

		var input VisaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		visa.Title = input.Title
		visa.TitleAr = input.TitleAr
		visa.CountryID = input.CountryID
		visa.Price = input.Price
		visa.DiscountedPrice = input.DiscountedPrice
		visa.ProcessingDays = input.ProcessingDays
		visa.Requirements = input.Requirements

		if err := db.Save(&visa).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update visa", err))
			return
		}
		c.JSON(http.StatusOK, visa)
	}
}

// DELETE /api/visas/:id (admin)
func DeleteVisa(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Visa{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete visa", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Visa not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Visa deleted"})
	}
}
