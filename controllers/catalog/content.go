package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TranslationInput struct {
	Key      string `json:"key" binding:"required"`
	Language string `json:"language" binding:"required"`
	Value    string `json:"value" binding:"required"`
}

type DictionaryEntryInput struct {
	Word       string `json:"word" binding:"required"`
	WordAr     string `json:"word_ar"`
	Definition string `json:"definition"`
}

type MenuInput struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

type MenuItemInput struct {
	MenuID     uint   `json:"menu_id" binding:"required"`
	ParentID   *uint  `json:"parent_id"`
	Title      string `json:"title" binding:"required"`
	TitleAr    string `json:"title_ar"`
	URL        string `json:"url"`
	OrderIndex int    `json:"order_index"`
}

// GET /api/translations
func GetTranslations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Translation{})
		if lang := c.Query("language"); lang != "" {
			query = query.Where("language = ?", lang)
		}
		var translations []models.Translation
		if err := query.Order("key").Find(&translations).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch translations", err))
			return
		}
		c.JSON(http.StatusOK, translations)
	}
}

// POST /api/translations (admin)
// Upserts on (key, language) so re-posting a key overwrites its value.
func UpsertTranslation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TranslationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		translation := models.Translation{Key: input.Key, Language: input.Language, Value: input.Value}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}, {Name: "language"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&translation).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to save translation", err))
			return
		}
		c.JSON(http.StatusOK, translation)
	}
}

// DELETE /api/translations/:id (admin)
func DeleteTranslation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Translation{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete translation", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Translation not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Translation deleted"})
	}
}

// GET /api/dictionary
func GetDictionaryEntries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.DictionaryEntry{})
		if word := c.Query("word"); word != "" {
			query = query.Where("word LIKE ?", "%"+word+"%")
		}
		var entries []models.DictionaryEntry
		if err := query.Order("word").Find(&entries).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch dictionary entries", err))
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// POST /api/dictionary (admin)
func CreateDictionaryEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DictionaryEntryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		entry := models.DictionaryEntry{Word: input.Word, WordAr: input.WordAr, Definition: input.Definition}
		if err := db.Create(&entry).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create dictionary entry", err))
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// DELETE /api/dictionary/:id (admin)
func DeleteDictionaryEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.DictionaryEntry{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete dictionary entry", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Dictionary entry not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Dictionary entry deleted"})
	}
}

// GET /api/menus
func GetMenus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Menu{})
		if location := c.Query("location"); location != "" {
			query = query.Where("location = ?", location)
		}
		var menus []models.Menu
		if err := query.Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index asc")
		}).Find(&menus).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch menus", err))
			return
		}
		c.JSON(http.StatusOK, menus)
	}
}

// POST /api/menus (admin)
func CreateMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MenuInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		menu := models.Menu{Name: input.Name, Location: input.Location}
		if err := db.Create(&menu).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create menu", err))
			return
		}
		c.JSON(http.StatusCreated, menu)
	}
}

// DELETE /api/menus/:id (admin)
func DeleteMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("menu_id = ?", c.Param("id")).Delete(&models.MenuItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Menu{}, "id = ?", c.Param("id")).Error
		})
		if err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete menu", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
	}
}

// POST /api/menu-items (admin)
func CreateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}
		item := models.MenuItem{
			MenuID:     input.MenuID,
			ParentID:   input.ParentID,
			Title:      input.Title,
			TitleAr:    input.TitleAr,
			URL:        input.URL,
			OrderIndex: input.OrderIndex,
		}
		if err := db.Create(&item).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create menu item", err))
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /api/menu-items/:id (admin)
func DeleteMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.MenuItem{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete menu item", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Menu item not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
	}
}
