package models

import "gorm.io/gorm"

// Block is directional: only the blocker may remove it. Symmetric queries
// belong to the service layer.
type Block struct {
	gorm.Model

	BlockerID uint `gorm:"not null;uniqueIndex:idx_blocker_blocked"`
	BlockedID uint `gorm:"not null;uniqueIndex:idx_blocker_blocked"`

	// Relationships
	Blocker User `gorm:"foreignKey:BlockerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Blocked User `gorm:"foreignKey:BlockedID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
