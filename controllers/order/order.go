package orderControllers

import (
	"crypto/rand"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/catalog"
	cartControllers "github.com/madoxlx/egtravel-api/controllers/cart"
	"github.com/madoxlx/egtravel-api/models"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	Currency      string `json:"currency"`
	SessionID     string `json:"sessionId"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderNumber builds the human-readable reference:
// "SJ" + unix millis + "-" + 6 random uppercase base36 chars.
// Uniqueness is backed by the order_number unique index; a collision
// surfaces as a constraint error rather than being probed for up front.
func generateOrderNumber() string {
	suffix := make([]byte, 6)
	raw := make([]byte, 6)
	if _, err := rand.Read(raw); err != nil {
		for i := range raw {
			raw[i] = byte(time.Now().UnixNano() >> (i * 8))
		}
	}
	for i, b := range raw {
		suffix[i] = base36Upper[int(b)%len(base36Upper)]
	}
	return "SJ" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}

// -------- Core Logic --------

var errEmptyCart = apierrors.E(apierrors.ValidationFailed, "cart is empty")
var errDuplicateCheckout = apierrors.E(apierrors.Conflict, "an identical checkout was just submitted")

// CreateOrder converts the identity's cart into an order. The order row, its
// frozen items, and the cart delete all commit in one transaction; any
// failure rolls the whole conversion back, so a half-created order can never
// be observed.
func CreateOrder(db *gorm.DB, rdb *redis.Client, identity models.Identity, req CreateOrderRequest) (*models.Order, error) {
	var cartItems []models.CartItem
	if err := identity.Scope(db).Order("added_at asc").Find(&cartItems).Error; err != nil {
		return nil, apierrors.Wrap(apierrors.Internal, "Failed to load cart", err)
	}
	if len(cartItems) == 0 {
		return nil, errEmptyCart
	}

	if rdb != nil {
		ok, err := claimCheckout(rdb, identity, cartItems)
		if err == nil && !ok {
			return nil, errDuplicateCheckout
		}
		// A Redis outage degrades to an unguarded checkout rather than
		// blocking customers.
	}

	currency := req.Currency
	if currency == "" {
		currency = "EGP"
	}

	var userID *uint
	var sessionID *string
	if identity.IsAuthenticated() {
		id := identity.UserID
		userID = &id
	} else {
		sid := identity.SessionID
		sessionID = &sid
	}

	order := models.Order{
		OrderNumber:   generateOrderNumber(),
		UserID:        userID,
		SessionID:     sessionID,
		Currency:      currency,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CreatedAt:     time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var orderItems []models.OrderItem

		for _, item := range cartItems {
			// Best effort: a vanished catalog row falls back to the
			// synthetic name and never aborts the order.
			name := catalog.ResolveName(tx, item.ItemType, item.ItemID)

			unitPrice := item.UnitPrice()
			totalPrice := unitPrice * float64(item.Quantity)
			total += totalPrice

			orderItems = append(orderItems, models.OrderItem{
				ItemType:        item.ItemType,
				ItemID:          item.ItemID,
				ItemName:        name,
				UnitPrice:       item.PriceAtAdd,
				DiscountedPrice: item.DiscountedPriceAtAdd,
				TotalPrice:      totalPrice,
				Quantity:        item.Quantity,
				Adults:          item.Adults,
				Children:        item.Children,
				Infants:         item.Infants,
				CheckInDate:     item.CheckInDate,
				CheckOutDate:    item.CheckOutDate,
				TravelDate:      item.TravelDate,
				Configuration:   item.Configuration,
			})
		}

		order.Items = orderItems
		order.TotalAmount = total

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := identity.Scope(tx).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, apierrors.Wrap(apierrors.Internal, "Failed to create order", err)
	}

	return &order, nil
}

// -------- Handlers --------

// POST /api/orders
func CreateOrderHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		identity, err := checkoutIdentity(c, req)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		order, err := CreateOrder(db, rdb, identity, req)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"order_number": order.OrderNumber,
			"order_id":     order.ID,
		})
	}
}

// checkoutIdentity mirrors the cart identity rules but also accepts the
// sessionId from the request body.
func checkoutIdentity(c *gin.Context, req CreateOrderRequest) (models.Identity, error) {
	if v, ok := c.Get("user_id"); ok {
		if userID, ok := v.(uint); ok && userID != 0 {
			return models.AuthenticatedIdentity(userID), nil
		}
	}
	if req.SessionID != "" {
		return models.AnonymousIdentity(req.SessionID), nil
	}
	if sessionID := c.Query("sessionId"); sessionID != "" {
		return models.AnonymousIdentity(sessionID), nil
	}
	return models.Identity{}, apierrors.E(apierrors.Unauthorized, "Login or sessionId is required")
}

// GET /api/orders/:orderNumber (owner or admin)
func GetOrderByNumberHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("orderNumber")
		if orderNumber == "" {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "orderNumber is required"))
			return
		}

		var order models.Order
		if err := db.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Order not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch order", err))
			return
		}

		// Strangers get the same 404 as a bad order number, so probing
		// numbers confirms nothing.
		if !callerMayViewOrder(c, order) {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Order not found"))
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func callerMayViewOrder(c *gin.Context, order models.Order) bool {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok && role == "admin" {
			return true
		}
	}
	if v, ok := c.Get("user_id"); ok {
		if userID, ok := v.(uint); ok && order.UserID != nil && *order.UserID == userID {
			return true
		}
	}
	if sid := c.Query("sessionId"); sid != "" && order.SessionID != nil && *order.SessionID == sid {
		return true
	}
	return false
}

// GET /api/orders (caller's own orders)
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := cartControllers.IdentityFromContext(c)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		var orders []models.Order
		if err := identity.Scope(db).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch orders", err))
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, err.Error()))
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, err.Error()))
			return
		}
		var order models.Order
		if err := db.Where("id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Order not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "failed to load order", err))
			return
		}
		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "failed to update order status", err))
			return
		}
		broadcastOrderStatus(order.OrderNumber, newStatus)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

// PUT /api/admin/orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, err.Error()))
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, err.Error()))
			return
		}
		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("payment_status", newStatus)
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "failed to update payment status", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Order not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}

// DELETE /api/admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "failed to delete order", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
