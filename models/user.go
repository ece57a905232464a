package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Role         string `gorm:"type:VARCHAR(20);default:'user'" json:"role"`

	Orders    []Order    `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session backs anonymous carts. The token is handed to the client and sent
// back as the sessionId query parameter.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_fav_user_package,unique" json:"user_id"`
	PackageID uint      `gorm:"index:idx_fav_user_package,unique" json:"package_id"`
	CreatedAt time.Time `json:"created_at"`
}
