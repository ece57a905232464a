package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection keeps the in-memory database alive and shared.
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
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedCartItem(t *testing.T, db *gorm.DB, identity models.Identity, itemType models.ItemType, itemID uint, qty int, price float64, discounted *float64) models.CartItem {
	t.Helper()

	item := models.CartItem{
		ItemType:             itemType,
		ItemID:               itemID,
		Quantity:             qty,
		PriceAtAdd:           price,
		DiscountedPriceAtAdd: discounted,
		AddedAt:              time.Now(),
	}
	if identity.IsAuthenticated() {
		id := identity.UserID
		item.UserID = &id
	} else {
		sid := identity.SessionID
		item.SessionID = &sid
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestCreateOrderFromCart(t *testing.T) {
	db := openTestDB(t)
	identity := models.AnonymousIdentity("sess-checkout")

	pkg := models.Package{Slug: "cairo-highlights", Title: "Cairo Highlights", Price: 10000}
	require.NoError(t, db.Create(&pkg).Error)
	tour := models.Tour{Name: "Nile Dinner Cruise", Price: 25000}
	require.NoError(t, db.Create(&tour).Error)

	seedCartItem(t, db, identity, models.ItemTypePackage, pkg.ID, 1, 10000, nil)
	seedCartItem(t, db, identity, models.ItemTypeTour, tour.ID, 1, 25000, nil)

	order, err := CreateOrder(db, nil, identity, CreateOrderRequest{
		CustomerName:  "Mona Adel",
		CustomerEmail: "mona@example.com",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "SJ"))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "EGP", order.Currency)

	var persisted models.Order
	require.NoError(t, db.Preload("Items").First(&persisted, "order_number = ?", order.OrderNumber).Error)
	require.Len(t, persisted.Items, 2)

	var sum float64
	var names []string
	for _, item := range persisted.Items {
		sum += item.TotalPrice
		names = append(names, item.ItemName)
	}
	assert.Equal(t, 35000.0, sum)
	assert.Equal(t, sum, persisted.TotalAmount)
	assert.ElementsMatch(t, []string{"Cairo Highlights", "Nile Dinner Cruise"}, names)

	// The cart was consumed in the same transaction.
	var remaining int64
	require.NoError(t, identity.Scope(db.Model(&models.CartItem{})).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestCreateOrderUsesDiscountedPrice(t *testing.T) {
	db := openTestDB(t)
	identity := models.AuthenticatedIdentity(42)

	discounted := 80.0
	seedCartItem(t, db, identity, models.ItemTypeVisa, 7, 3, 100, &discounted)

	order, err := CreateOrder(db, nil, identity, CreateOrderRequest{
		CustomerName:  "Omar Said",
		CustomerEmail: "omar@example.com",
		Currency:      "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", order.Currency)

	var item models.OrderItem
	require.NoError(t, db.First(&item, "order_id = ?", order.ID).Error)
	assert.Equal(t, 100.0, item.UnitPrice)
	require.NotNil(t, item.DiscountedPrice)
	assert.Equal(t, 80.0, *item.DiscountedPrice)
	assert.Equal(t, 240.0, item.TotalPrice)
	assert.Equal(t, 240.0, order.TotalAmount)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := openTestDB(t)

	_, err := CreateOrder(db, nil, models.AnonymousIdentity("sess-empty"), CreateOrderRequest{
		CustomerName:  "Nobody",
		CustomerEmail: "nobody@example.com",
	})
	require.Error(t, err)

	var apiErr *apierrors.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ValidationFailed, apiErr.Kind)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderSyntheticNameForMissingItem(t *testing.T) {
	db := openTestDB(t)
	identity := models.AnonymousIdentity("sess-dangling")

	// References a package row that does not exist.
	seedCartItem(t, db, identity, models.ItemTypePackage, 999, 1, 500, nil)

	order, err := CreateOrder(db, nil, identity, CreateOrderRequest{
		CustomerName:  "Hala Farid",
		CustomerEmail: "hala@example.com",
	})
	require.NoError(t, err)

	var item models.OrderItem
	require.NoError(t, db.First(&item, "order_id = ?", order.ID).Error)
	assert.Equal(t, "package #999", item.ItemName)
	assert.Equal(t, 500.0, item.TotalPrice)
}

func TestCreateOrderDoesNotTouchOtherIdentities(t *testing.T) {
	db := openTestDB(t)
	buyer := models.AnonymousIdentity("sess-buyer")
	other := models.AnonymousIdentity("sess-other")

	seedCartItem(t, db, buyer, models.ItemTypeTour, 1, 1, 100, nil)
	seedCartItem(t, db, other, models.ItemTypeTour, 2, 1, 200, nil)

	_, err := CreateOrder(db, nil, buyer, CreateOrderRequest{
		CustomerName:  "Buyer",
		CustomerEmail: "buyer@example.com",
	})
	require.NoError(t, err)

	var otherCount int64
	require.NoError(t, other.Scope(db.Model(&models.CartItem{})).Count(&otherCount).Error)
	assert.Equal(t, int64(1), otherCount)
}

func TestGenerateOrderNumber(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		num := generateOrderNumber()

		assert.True(t, strings.HasPrefix(num, "SJ"), "order number %q must start with SJ", num)

		parts := strings.SplitN(num, "-", 2)
		require.Len(t, parts, 2)
		assert.Len(t, parts[1], 6)
		for _, r := range parts[1] {
			assert.Contains(t, base36Upper, string(r))
		}

		assert.False(t, seen[num], "duplicate order number %q", num)
		seen[num] = true
	}
}

func orderLookupRouter(db *gorm.DB, ctxValues map[string]any) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if ctxValues != nil {
		r.Use(func(c *gin.Context) {
			for k, v := range ctxValues {
				c.Set(k, v)
			}
		})
	}
	r.GET("/api/orders/:orderNumber", GetOrderByNumberHandler(db))
	return r
}

func getOrder(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetOrderByNumberRestrictedToOwnerOrAdmin(t *testing.T) {
	db := openTestDB(t)
	owner := models.AnonymousIdentity("sess-owner")
	seedCartItem(t, db, owner, models.ItemTypePackage, 1, 1, 100, nil)

	order, err := CreateOrder(db, nil, owner, CreateOrderRequest{
		CustomerName:  "Owner",
		CustomerEmail: "owner@example.com",
	})
	require.NoError(t, err)
	path := "/api/orders/" + order.OrderNumber

	// A stranger who only knows the number gets the same 404 as a bad
	// number, never the customer details.
	w := getOrder(t, orderLookupRouter(db, nil), path)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "owner@example.com")

	w = getOrder(t, orderLookupRouter(db, nil), path+"?sessionId=sess-imposter")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getOrder(t, orderLookupRouter(db, nil), path+"?sessionId=sess-owner")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.OrderNumber)

	w = getOrder(t, orderLookupRouter(db, map[string]any{"user_id": uint(1), "role": "admin"}), path)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetOrderByNumberUserOwnedOrder(t *testing.T) {
	db := openTestDB(t)
	owner := models.AuthenticatedIdentity(9)
	seedCartItem(t, db, owner, models.ItemTypeTour, 3, 1, 400, nil)

	order, err := CreateOrder(db, nil, owner, CreateOrderRequest{
		CustomerName:  "Laila Hassan",
		CustomerEmail: "laila@example.com",
	})
	require.NoError(t, err)
	path := "/api/orders/" + order.OrderNumber

	w := getOrder(t, orderLookupRouter(db, map[string]any{"user_id": uint(10), "role": "user"}), path)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getOrder(t, orderLookupRouter(db, map[string]any{"user_id": uint(9), "role": "user"}), path)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, status)

	_, err = mapOrderStatus("shipped")
	assert.Error(t, err)
}
