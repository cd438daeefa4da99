package models

import "gorm.io/gorm"

type JobPosting struct {
	gorm.Model

	OwnerID     uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Location    string

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
