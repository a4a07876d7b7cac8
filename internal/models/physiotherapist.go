package models

import (
	"time"

	"gorm.io/gorm"
)

type Physiotherapist struct {
	ID              string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string  `gorm:"size:150;not null" json:"name"`
	Role            string  `gorm:"size:150;not null" json:"role"`
	Description     string  `gorm:"type:text;not null" json:"description"`
	Image           *string `gorm:"size:512" json:"image"`
	Experience      string  `gorm:"size:100;not null" json:"experience"`
	Specializations string  `gorm:"type:text;not null" json:"specializations"`
	IsActive        bool    `gorm:"not null;default:true;index" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Physiotherapist) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
