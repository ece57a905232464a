package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ItemType tags the catalog table a cart or order line refers to.
type ItemType string

const (
	ItemTypePackage        ItemType = "package"
	ItemTypeTour           ItemType = "tour"
	ItemTypeHotel          ItemType = "hotel"
	ItemTypeRoom           ItemType = "room"
	ItemTypeVisa           ItemType = "visa"
	ItemTypeTransportation ItemType = "transportation"
)

func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemTypePackage, ItemTypeTour, ItemTypeHotel, ItemTypeRoom, ItemTypeVisa, ItemTypeTransportation:
		return ItemType(s), nil
	default:
		return "", errors.New("invalid item type: " + s)
	}
}

// SyntheticName is the display name used when the referenced catalog row
// no longer exists.
func SyntheticName(t ItemType, id uint) string {
	return fmt.Sprintf("%s #%d", t, id)
}

// Identity is the owner of a cart: an authenticated user id or an anonymous
// session token, never both. Cart operations take it as an explicit parameter.
type Identity struct {
	UserID    uint
	SessionID string
}

func AuthenticatedIdentity(userID uint) Identity {
	return Identity{UserID: userID}
}

func AnonymousIdentity(sessionID string) Identity {
	return Identity{SessionID: sessionID}
}

func (i Identity) IsAuthenticated() bool { return i.UserID != 0 }

func (i Identity) IsZero() bool { return i.UserID == 0 && i.SessionID == "" }

// Scope restricts a query to rows owned by this identity.
func (i Identity) Scope(tx *gorm.DB) *gorm.DB {
	if i.IsAuthenticated() {
		return tx.Where("user_id = ?", i.UserID)
	}
	return tx.Where("user_id IS NULL AND session_id = ?", i.SessionID)
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    *uint   `gorm:"index" json:"user_id,omitempty"`
	SessionID *string `gorm:"index" json:"session_id,omitempty"`

	ItemType ItemType `gorm:"type:VARCHAR(20);not null" json:"item_type"`
	ItemID   uint     `gorm:"not null" json:"item_id"`

	Quantity int `gorm:"not null" json:"quantity"`
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	CheckInDate  *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate *time.Time `json:"check_out_date,omitempty"`
	TravelDate   *time.Time `json:"travel_date,omitempty"`

	Configuration datatypes.JSON `json:"configuration,omitempty"`

	PriceAtAdd           float64  `gorm:"not null" json:"price_at_add"`
	DiscountedPriceAtAdd *float64 `json:"discounted_price_at_add,omitempty"`

	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Owner reconstructs the identity a row belongs to.
func (ci CartItem) Owner() Identity {
	if ci.UserID != nil {
		return AuthenticatedIdentity(*ci.UserID)
	}
	if ci.SessionID != nil {
		return AnonymousIdentity(*ci.SessionID)
	}
	return Identity{}
}

// UnitPrice is the price frozen at add time, discounted when available.
func (ci CartItem) UnitPrice() float64 {
	if ci.DiscountedPriceAtAdd != nil {
		return *ci.DiscountedPriceAtAdd
	}
	return ci.PriceAtAdd
}
