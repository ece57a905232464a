package models

import (
	"time"

	"gorm.io/gorm"
)

type Package struct {
	ID              uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug            string   `gorm:"uniqueIndex;not null" json:"slug"`
	Title           string   `gorm:"not null" json:"title"`
	TitleAr         string   `json:"title_ar"`
	Description     string   `json:"description"`
	DescriptionAr   string   `json:"description_ar"`
	Price           float64  `gorm:"not null" json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	DurationDays    int      `json:"duration_days"`
	DestinationID   *uint    `gorm:"index" json:"destination_id,omitempty"`
	Featured        bool     `gorm:"index" json:"featured"`
	ImageURL        string   `json:"image_url"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Tour struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Name            string   `gorm:"not null" json:"name"`
	NameAr          string   `json:"name_ar"`
	Description     string   `json:"description"`
	Price           float64  `gorm:"not null" json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	DurationHours   int      `json:"duration_hours"`
	DestinationID   *uint    `gorm:"index" json:"destination_id,omitempty"`
	Featured        bool     `gorm:"index" json:"featured"`
	ImageURL        string   `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Hotel struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	NameAr        string `json:"name_ar"`
	Description   string `json:"description"`
	Stars         int    `json:"stars"`
	DestinationID *uint  `gorm:"index" json:"destination_id,omitempty"`
	Featured      bool   `gorm:"index" json:"featured"`
	ImageURL      string `json:"image_url"`

	Rooms []Room `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Room struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	HotelID         uint     `gorm:"index;not null" json:"hotel_id"`
	Name            string   `gorm:"not null" json:"name"`
	NameAr          string   `json:"name_ar"`
	Price           float64  `gorm:"not null" json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	MaxAdults       int      `json:"max_adults"`
	MaxChildren     int      `json:"max_children"`
	MaxInfants      int      `json:"max_infants"`

	Combinations []RoomCombination `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"combinations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomCombination prices a specific occupancy of a room.
type RoomCombination struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	RoomID   uint    `gorm:"index;not null" json:"room_id"`
	Adults   int     `json:"adults"`
	Children int     `json:"children"`
	Infants  int     `json:"infants"`
	Price    float64 `json:"price"`
}

type Transportation struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Name            string   `gorm:"not null" json:"name"`
	NameAr          string   `json:"name_ar"`
	VehicleType     string   `json:"vehicle_type"` // e.g. "sedan", "van", "coach"
	Capacity        int      `json:"capacity"`
	Price           float64  `gorm:"not null" json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	Featured        bool     `json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Visa struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Title           string   `gorm:"not null" json:"title"`
	TitleAr         string   `json:"title_ar"`
	CountryID       *uint    `gorm:"index" json:"country_id,omitempty"`
	Price           float64  `gorm:"not null" json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	ProcessingDays  int      `json:"processing_days"`
	Requirements    string   `json:"requirements"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
