package models

import (
	"time"

	"gorm.io/gorm"
)

type Contact struct {
	ID      string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string  `gorm:"size:150;not null" json:"name"`
	Email   string  `gorm:"size:255;not null" json:"email"`
	Phone   *string `gorm:"size:20" json:"phone"`
	Subject string  `gorm:"size:255;not null" json:"subject"`
	Message string  `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (c *Contact) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
