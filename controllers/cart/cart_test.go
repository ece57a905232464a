package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/madoxlx/egtravel-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Package{},
		&models.Tour{},
		&models.Hotel{},
		&models.Room{},
		&models.Visa{},
		&models.Transportation{},
		&models.CartItem{},
	))
	return db
}

func newCartRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cart := r.Group("/api/cart")
	{
		cart.GET("", GetCart(db))
		cart.POST("", AddCartItem(db))
		cart.DELETE("/clear", ClearCart(db))
		cart.PATCH("/:id", UpdateCartItem(db))
		cart.DELETE("/:id", DeleteCartItem(db))
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddAndGetCartResolvesNames(t *testing.T) {
	db := openTestDB(t)
	r := newCartRouter(db)

	pkg := models.Package{Slug: "luxor-aswan", Title: "Luxor & Aswan", Price: 12000}
	require.NoError(t, db.Create(&pkg).Error)

	w := doJSON(t, r, http.MethodPost, "/api/cart?sessionId=sess-a", gin.H{
		"item_type":    "package",
		"item_id":      pkg.ID,
		"quantity":     2,
		"adults":       2,
		"price_at_add": 12000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Second line references a package that does not exist.
	w = doJSON(t, r, http.MethodPost, "/api/cart?sessionId=sess-a", gin.H{
		"item_type":    "package",
		"item_id":      4242,
		"quantity":     1,
		"price_at_add": 900,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/cart?sessionId=sess-a", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []EnrichedItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)

	assert.Equal(t, "Luxor & Aswan", items[0].ItemName)
	assert.NotNil(t, items[0].Details)

	assert.Equal(t, "package #4242", items[1].ItemName)
	assert.Nil(t, items[1].Details)
}

func TestAddCartItemRejectsUnknownType(t *testing.T) {
	db := openTestDB(t)
	r := newCartRouter(db)

	w := doJSON(t, r, http.MethodPost, "/api/cart?sessionId=sess-a", gin.H{
		"item_type":    "cruise",
		"item_id":      1,
		"quantity":     1,
		"price_at_add": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemRequiresIdentity(t *testing.T) {
	db := openTestDB(t)
	r := newCartRouter(db)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{
		"item_type":    "package",
		"item_id":      1,
		"quantity":     1,
		"price_at_add": 100,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateCartItemCrossIdentityIsNoOp(t *testing.T) {
	db := openTestDB(t)
	r := newCartRouter(db)

	sid := "sess-a"
	item := models.CartItem{
		SessionID:  &sid,
		ItemType:   models.ItemTypeTour,
		ItemID:     1,
		Quantity:   1,
		PriceAtAdd: 100,
	}
	require.NoError(t, db.Create(&item).Error)

	// A different session tries to change the quantity.
	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/cart/%d?sessionId=sess-b", item.ID), gin.H{
		"quantity": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp["updated"])

	var reloaded models.CartItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	assert.Equal(t, 1, reloaded.Quantity)
}

func TestUpdateCartItemOwnIdentity(t *testing.T) {
	db := openTestDB(t)
	r := newCartRouter(db)

	sid := "sess-a"
	item := models.CartItem{
		SessionID:  &sid,
		ItemType:   models.ItemTypeTour,
		ItemID:     1,
		Quantity:   1,
		PriceAtAdd: 100,
	}
	require.NoError(t, db.Create(&item).Error)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/cart/%d?sessionId=sess-a", item.ID), gin.H{
		"quantity": 3,
		"adults":   2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.CartItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	assert.Equal(t, 3, reloaded.Quantity)
	assert.Equal(t, 2, reloaded.Adults)
}

func TestClearCartOnlyTouchesCaller(t *testing.T) {
	db := openTestDB(t)
	r := newCartRouter(db)

	for _, sid := range []string{"sess-a", "sess-b"} {
		sid := sid
		require.NoError(t, db.Create(&models.CartItem{
			SessionID:  &sid,
			ItemType:   models.ItemTypeHotel,
			ItemID:     1,
			Quantity:   1,
			PriceAtAdd: 100,
		}).Error)
	}

	w := doJSON(t, r, http.MethodDelete, "/api/cart/clear?sessionId=sess-a", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var countA, countB int64
	require.NoError(t, models.AnonymousIdentity("sess-a").Scope(db.Model(&models.CartItem{})).Count(&countA).Error)
	require.NoError(t, models.AnonymousIdentity("sess-b").Scope(db.Model(&models.CartItem{})).Count(&countB).Error)
	assert.Zero(t, countA)
	assert.Equal(t, int64(1), countB)
}

func TestDeleteCartItemNotFound(t *testing.T) {
	db := openTestDB(t)
	r := newCartRouter(db)

	w := doJSON(t, r, http.MethodDelete, "/api/cart/12345?sessionId=sess-a", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
