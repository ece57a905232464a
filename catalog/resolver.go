// Package catalog resolves polymorphic item references (type tag + id)
// against their backing tables.
package catalog

import (
	"errors"

	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
)

// Resolved is the display payload for one cart or order line. Details is nil
// when the referenced row no longer exists.
type Resolved struct {
	Name    string      `json:"item_name"`
	Details interface{} `json:"details"`
}

type lookupFunc func(tx *gorm.DB, id uint) (string, interface{}, error)

// One entry per item type; dispatch goes through this table, never through
// string comparison in handlers.
var lookups = map[models.ItemType]lookupFunc{
	models.ItemTypePackage: func(tx *gorm.DB, id uint) (string, interface{}, error) {
		var p models.Package
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return "", nil, err
		}
		return p.Title, p, nil
	},
	models.ItemTypeTour: func(tx *gorm.DB, id uint) (string, interface{}, error) {
		var t models.Tour
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return "", nil, err
		}
		return t.Name, t, nil
	},
	models.ItemTypeHotel: func(tx *gorm.DB, id uint) (string, interface{}, error) {
		var h models.Hotel
		if err := tx.First(&h, "id = ?", id).Error; err != nil {
			return "", nil, err
		}
		return h.Name, h, nil
	},
	models.ItemTypeRoom: func(tx *gorm.DB, id uint) (string, interface{}, error) {
		var r models.Room
		if err := tx.First(&r, "id = ?", id).Error; err != nil {
			return "", nil, err
		}
		return r.Name, r, nil
	},
	models.ItemTypeVisa: func(tx *gorm.DB, id uint) (string, interface{}, error) {
		var v models.Visa
		if err := tx.First(&v, "id = ?", id).Error; err != nil {
			return "", nil, err
		}
		return v.Title, v, nil
	},
	models.ItemTypeTransportation: func(tx *gorm.DB, id uint) (string, interface{}, error) {
		var t models.Transportation
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return "", nil, err
		}
		return t.Name, t, nil
	},
}

// Resolve looks up the display name and full record for an item reference.
// A missing row degrades to the synthetic name with nil details; only
// unexpected database errors are returned.
func Resolve(tx *gorm.DB, itemType models.ItemType, itemID uint) (Resolved, error) {
	lookup, ok := lookups[itemType]
	if !ok {
		return Resolved{Name: models.SyntheticName(itemType, itemID)}, nil
	}
	name, details, err := lookup(tx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Resolved{Name: models.SyntheticName(itemType, itemID)}, nil
		}
		return Resolved{}, err
	}
	return Resolved{Name: name, Details: details}, nil
}

// ResolveName is Resolve without the details payload. It never fails the
// caller over a missing row; database errors also fall back to the synthetic
// name so a single bad lookup cannot abort an order.
func ResolveName(tx *gorm.DB, itemType models.ItemType, itemID uint) string {
	resolved, err := Resolve(tx, itemType, itemID)
	if err != nil {
		return models.SyntheticName(itemType, itemID)
	}
	return resolved.Name
}
