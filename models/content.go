package models

import "time"

type Translation struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Key      string `gorm:"index:idx_translation_key_lang,unique;not null" json:"key"`
	Language string `gorm:"index:idx_translation_key_lang,unique;type:VARCHAR(5);not null" json:"language"`
	Value    string `gorm:"not null" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DictionaryEntry struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Word       string `gorm:"index;not null" json:"word"`
	WordAr     string `json:"word_ar"`
	Definition string `json:"definition"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Menu struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `gorm:"index" json:"location"` // e.g. "header", "footer"

	Items []MenuItem `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	MenuID     uint   `gorm:"index;not null" json:"menu_id"`
	ParentID   *uint  `gorm:"index" json:"parent_id,omitempty"`
	Title      string `gorm:"not null" json:"title"`
	TitleAr    string `json:"title_ar"`
	URL        string `json:"url"`
	OrderIndex int    `json:"order_index"`
}
