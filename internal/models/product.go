package models

import "gorm.io/gorm"

// Product is a marketplace listing. Listing CRUD lives outside this core;
// the table exists as a report and favorite target.
type Product struct {
	gorm.Model

	OwnerID     uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Price       float64

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
