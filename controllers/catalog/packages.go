package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
)

type PackageInput struct {
	Slug            string   `json:"slug" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	TitleAr         string   `json:"title_ar"`
	Description     string   `json:"description"`
	DescriptionAr   string   `json:"description_ar"`
	Price           float64  `json:"price" binding:"required"`
	DiscountedPrice *float64 `json:"discounted_price"`
	DurationDays    int      `json:"duration_days"`
	DestinationID   *uint    `json:"destination_id"`
	Featured        bool     `json:"featured"`
	ImageURL        string   `json:"image_url"`
}

// applyPriceBand parses min_price/max_price query params onto a list query.
func applyPriceBand(c *gin.Context, query *gorm.DB, column string) (*gorm.DB, error) {
	if minStr := c.Query("min_price"); minStr != "" {
		mp, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return nil, apierrors.E(apierrors.ValidationFailed, "Invalid min_price")
		}
		query = query.Where(column+" >= ?", mp)
	}
	if maxStr := c.Query("max_price"); maxStr != "" {
		mp, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return nil, apierrors.E(apierrors.ValidationFailed, "Invalid max_price")
		}
		query = query.Where(column+" <= ?", mp)
	}
	return query, nil
}

// GET /api/packages
func GetPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Package{})

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

		if minDays := c.Query("min_days"); minDays != "" {
			if d, err := strconv.Atoi(minDays); err == nil {
				query = query.Where("duration_days >= ?", d)
			} else {
				apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid min_days"))
				return
			}
		}
		if maxDays := c.Query("max_days"); maxDays != "" {
			if d, err := strconv.Atoi(maxDays); err == nil {
				query = query.Where("duration_days <= ?", d)
			} else {
				apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid max_days"))
				return
			}
		}

		var packages []models.Package
		if err := query.Order("created_at DESC").Find(&packages).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch packages", err))
			return
		}
		c.JSON(http.StatusOK, packages)
	}
}

// GET /api/packages/featured
func GetFeaturedPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var packages []models.Package
		if err := db.Where("featured = ?", true).Order("created_at DESC").Find(&packages).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch packages", err))
			return
		}
		c.JSON(http.StatusOK, packages)
	}
}

// GET /api/packages/:id
func GetPackageByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := db.First(&pkg, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Package not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch package", err))
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

// GET /api/packages/slug/:slug
func GetPackageBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := db.Where("slug = ?", c.Param("slug")).First(&pkg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Package not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch package", err))
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

// POST /api/packages (admin)
func CreatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		pkg := models.Package{
			Slug:            input.Slug,
			Title:           input.Title,
			TitleAr:         input.TitleAr,
			Description:     input.Description,
			DescriptionAr:   input.DescriptionAr,
			Price:           input.Price,
			DiscountedPrice: input.DiscountedPrice,
			DurationDays:    input.DurationDays,
			DestinationID:   input.DestinationID,
			Featured:        input.Featured,
			ImageURL:        input.ImageURL,
		}
		if err := db.Create(&pkg).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create package", err))
			return
		}
		c.JSON(http.StatusCreated, pkg)
	}
}

// PUT /api/packages/:id (admin)
func UpdatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := db.First(&pkg, "id = ?", c.Param("id")).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Package not found"))
			return
		}

		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		pkg.Slug = input.Slug
		pkg.Title = input.Title
		pkg.TitleAr = input.TitleAr
		pkg.Description = input.Description
		pkg.DescriptionAr = input.DescriptionAr
		pkg.Price = input.Price
		pkg.DiscountedPrice = input.DiscountedPrice
		pkg.DurationDays = input.DurationDays
		pkg.DestinationID = input.DestinationID
		pkg.Featured = input.Featured
		pkg.ImageURL = input.ImageURL

		if err := db.Save(&pkg).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update package", err))
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

// DELETE /api/packages/:id (admin)
func DeletePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Package{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete package", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Package not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
	}
}
