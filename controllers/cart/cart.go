package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/catalog"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ItemType string `json:"item_type" binding:"required"`
	ItemID   uint   `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Infants  int    `json:"infants"`

	CheckInDate  *time.Time `json:"check_in_date"`
	CheckOutDate *time.Time `json:"check_out_date"`
	TravelDate   *time.Time `json:"travel_date"`

	Configuration datatypes.JSON `json:"configuration"`

	PriceAtAdd           float64  `json:"price_at_add" binding:"required"`
	DiscountedPriceAtAdd *float64 `json:"discounted_price_at_add"`
}

type UpdateItemInput struct {
	Quantity *int `json:"quantity" binding:"omitempty,min=1"`
	Adults   *int `json:"adults"`
	Children *int `json:"children"`
	Infants  *int `json:"infants"`

	CheckInDate  *time.Time `json:"check_in_date"`
	CheckOutDate *time.Time `json:"check_out_date"`
	TravelDate   *time.Time `json:"travel_date"`

	Configuration datatypes.JSON `json:"configuration"`
}

// EnrichedItem is a cart row joined with its resolved catalog record.
type EnrichedItem struct {
	models.CartItem
	ItemName string      `json:"item_name"`
	Details  interface{} `json:"details"`
}

// IdentityFromContext resolves the caller's cart identity: an authenticated
// user id from the JWT wins over the sessionId query parameter.
func IdentityFromContext(c *gin.Context) (models.Identity, error) {
	if v, ok := c.Get("user_id"); ok {
		if userID, ok := v.(uint); ok && userID != 0 {
			return models.AuthenticatedIdentity(userID), nil
		}
	}
	if sessionID := c.Query("sessionId"); sessionID != "" {
		return models.AnonymousIdentity(sessionID), nil
	}
	return models.Identity{}, apierrors.E(apierrors.Unauthorized, "Login or sessionId is required")
}

func identityColumns(identity models.Identity) (*uint, *string) {
	if identity.IsAuthenticated() {
		id := identity.UserID
		return &id, nil
	}
	sid := identity.SessionID
	return nil, &sid
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := IdentityFromContext(c)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		var items []models.CartItem
		if err := identity.Scope(db).Order("added_at asc").Find(&items).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch cart", err))
			return
		}

		enriched := make([]EnrichedItem, 0, len(items))
		for _, item := range items {
			resolved, err := catalog.Resolve(db, item.ItemType, item.ItemID)
			if err != nil {
				apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to resolve cart item", err))
				return
			}
			enriched = append(enriched, EnrichedItem{
				CartItem: item,
				ItemName: resolved.Name,
				Details:  resolved.Details,
			})
		}

		c.JSON(http.StatusOK, enriched)
	}
}

// POST /api/cart
// The referenced catalog id is not checked for existence; a dangling
// reference degrades to a synthetic display name on read.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := IdentityFromContext(c)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		itemType, err := models.ParseItemType(input.ItemType)
		if err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, err.Error()))
			return
		}

		userID, sessionID := identityColumns(identity)
		item := models.CartItem{
			UserID:               userID,
			SessionID:            sessionID,
			ItemType:             itemType,
			ItemID:               input.ItemID,
			Quantity:             input.Quantity,
			Adults:               input.Adults,
			Children:             input.Children,
			Infants:              input.Infants,
			CheckInDate:          input.CheckInDate,
			CheckOutDate:         input.CheckOutDate,
			TravelDate:           input.TravelDate,
			Configuration:        input.Configuration,
			PriceAtAdd:           input.PriceAtAdd,
			DiscountedPriceAtAdd: input.DiscountedPriceAtAdd,
			AddedAt:              time.Now(),
		}

		if err := db.Create(&item).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to add item to cart", err))
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// PATCH /api/cart/:id
// Ownership is enforced by the identity filter alone: updating an item that
// belongs to someone else matches zero rows and succeeds silently.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := IdentityFromContext(c)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		updates := make(map[string]interface{})
		if input.Quantity != nil {
			updates["quantity"] = *input.Quantity
		}
		if input.Adults != nil {
			updates["adults"] = *input.Adults
		}
		if input.Children != nil {
			updates["children"] = *input.Children
		}
		if input.Infants != nil {
			updates["infants"] = *input.Infants
		}
		if input.CheckInDate != nil {
			updates["check_in_date"] = *input.CheckInDate
		}
		if input.CheckOutDate != nil {
			updates["check_out_date"] = *input.CheckOutDate
		}
		if input.TravelDate != nil {
			updates["travel_date"] = *input.TravelDate
		}
		if input.Configuration != nil {
			updates["configuration"] = input.Configuration
		}
		if len(updates) == 0 {
			c.JSON(http.StatusOK, gin.H{"updated": 0})
			return
		}

		result := identity.Scope(db.Model(&models.CartItem{})).
			Where("id = ?", c.Param("id")).
			Updates(updates)
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update cart item", result.Error))
			return
		}

		c.JSON(http.StatusOK, gin.H{"updated": result.RowsAffected})
	}
}

// DELETE /api/cart/:id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := IdentityFromContext(c)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		result := identity.Scope(db).Where("id = ?", c.Param("id")).Delete(&models.CartItem{})
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete cart item", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Cart item not found"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /api/cart/clear
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := IdentityFromContext(c)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		if err := identity.Scope(db).Delete(&models.CartItem{}).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to clear cart", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /api/admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "user_id is required"))
			return
		}

		var items []models.CartItem
		if err := db.Where("user_id = ?", userID).Order("added_at asc").Find(&items).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch cart", err))
			return
		}

		c.JSON(http.StatusOK, items)
	}
}
