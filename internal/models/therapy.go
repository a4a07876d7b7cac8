package models

import "gorm.io/gorm"

type Therapy struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	PriceMin    int    `gorm:"not null" json:"priceMin"`
	PriceMax    int    `gorm:"not null" json:"priceMax"`
	Duration    int    `gorm:"not null" json:"duration"` // minutes
	IsActive    bool   `gorm:"not null;default:true;index" json:"isActive"`
}

func (t *Therapy) BeforeCreate(*gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
