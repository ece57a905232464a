package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
)

type CountryInput struct {
	Name   string `json:"name" binding:"required"`
	NameAr string `json:"name_ar"`
	Code   string `json:"code" binding:"required,len=2"`
}

type CityInput struct {
	CountryID uint   `json:"country_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	NameAr    string `json:"name_ar"`
}

type AirportInput struct {
	CityID uint   `json:"city_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Code   string `json:"code" binding:"omitempty,len=3"`
}

type DestinationInput struct {
	Name        string `json:"name" binding:"required"`
	NameAr      string `json:"name_ar"`
	CountryID   *uint  `json:"country_id"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Featured    bool   `json:"featured"`
}

// GET /api/countries
func GetCountries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var countries []models.Country
		if err := db.Preload("Cities").Order("name").Find(&countries).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch countries", err))
			return
		}
		c.JSON(http.StatusOK, countries)
	}
}

// POST /api/countries (admin)
func CreateCountry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CountryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		country := models.Country{Name: input.Name, NameAr: input.NameAr, Code: input.Code}
		if err := db.Create(&country).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create country", err))
			return
		}
		c.JSON(http.StatusCreated, country)
	}
}

// PUT /api/countries/:id (admin)
func UpdateCountry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var country models.Country
		if err := db.First(&country, "id = ?", c.Param("id")).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Country not found"))
			return
		}
		var input CountryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		country.Name = input.Name
		country.NameAr = input.NameAr
		country.Code = input.Code
		if err := db.Save(&country).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update country", err))
			return
		}
		c.JSON(http.StatusOK, country)
	}
}

// DELETE /api/countries/:id (admin)
func DeleteCountry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Country{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete country", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Country not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Country deleted"})
	}
}

// GET /api/cities
func GetCities(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.City{})
		if country := c.Query("country_id"); country != "" {
			query = query.Where("country_id = ?", country)
		}
		var cities []models.City
		if err := query.Order("name").Find(&cities).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch cities", err))
			return
		}
		c.JSON(http.StatusOK, cities)
	}
}

// POST /api/cities (admin)
func CreateCity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		city := models.City{CountryID: input.CountryID, Name: input.Name, NameAr: input.NameAr}
		if err := db.Create(&city).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create city", err))
			return
		}
		c.JSON(http.StatusCreated, city)
	}
}

// PUT /api/cities/:id (admin)
func UpdateCity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var city models.City
		if err := db.First(&city, "id = ?", c.Param("id")).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "City not found"))
			return
		}
		var input CityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		city.CountryID = input.CountryID
		city.Name = input.Name
		city.NameAr = input.NameAr
		if err := db.Save(&city).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update city", err))
			return
		}
		c.JSON(http.StatusOK, city)
	}
}

// DELETE /api/cities/:id (admin)
func DeleteCity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.City{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete city", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "City not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "City deleted"})
	}
}

// GET /api/airports
func GetAirports(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Airport{})
		if city := c.Query("city_id"); city != "" {
			query = query.Where("city_id = ?", city)
		}
		var airports []models.Airport
		if err := query.Order("name").Find(&airports).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch airports", err))
			return
		}
		c.JSON(http.StatusOK, airports)
	}
}

// POST /api/airports (admin)
func CreateAirport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AirportInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		airport := models.Airport{CityID: input.CityID, Name: input.Name, Code: input.Code}
		if err := db.Create(&airport).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create airport", err))
			return
		}
		c.JSON(http.StatusCreated, airport)
	}
}

// DELETE /api/airports/:id (admin)
func DeleteAirport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Airport{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete airport", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Airport not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Airport deleted"})
	}
}

// GET /api/destinations
func GetDestinations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Destination{})
		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}
		var destinations []models.Destination
		if err := query.Order("name").Find(&destinations).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch destinations", err))
			return
		}
		c.JSON(http.StatusOK, destinations)
	}
}

// GET /api/destinations/:id
func GetDestinationByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var destination models.Destination
		if err := db.First(&destination, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Destination not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch destination", err))
			return
		}
		c.JSON(http.StatusOK, destination)
	}
}

// POST /api/destinations (admin)
func CreateDestination(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DestinationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		destination := models.Destination{
			Name:        input.Name,
			NameAr:      input.NameAr,
			CountryID:   input.CountryID,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Featured:    input.Featured,
		}
		if err := db.Create(&destination).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create destination", err))
			return
		}
		c.JSON(http.StatusCreated, destination)
	}
}

// PUT /api/destinations/:id (admin)
func UpdateDestination(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var destination models.Destination
		if err := db.First(&destination, "id = ?", c.Param("id")).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Destination not found"))
			return
		}
		var input DestinationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		destination.Name = input.Name
		destination.NameAr = input.NameAr
		destination.CountryID = input.CountryID
		destination.Description = input.Description
		destination.ImageURL = input.ImageURL
		destination.Featured = input.Featured
		if err := db.Save(&destination).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update destination", err))
			return
		}
		c.JSON(http.StatusOK, destination)
	}
}

// DELETE /api/destinations/:id (admin)
func DeleteDestination(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Destination{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete destination", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Destination not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Destination deleted"})
	}
}
