package models

import "time"

type Country struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	NameAr string `json:"name_ar"`
	Code   string `gorm:"type:VARCHAR(2);uniqueIndex" json:"code"` // ISO 3166-1 alpha-2

	Cities []City `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE" json:"cities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type City struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CountryID uint   `gorm:"index;not null" json:"country_id"`
	Name      string `gorm:"not null" json:"name"`
	NameAr    string `json:"name_ar"`

	Airports []Airport `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE" json:"airports,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Airport struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	CityID uint   `gorm:"index;not null" json:"city_id"`
	Name   string `gorm:"not null" json:"name"`
	Code   string `gorm:"type:VARCHAR(3)" json:"code"` // IATA

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Destination struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	NameAr      string `json:"name_ar"`
	CountryID   *uint  `gorm:"index" json:"country_id,omitempty"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Featured    bool   `gorm:"index" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
