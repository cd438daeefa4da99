package models

import "gorm.io/gorm"

type FavoriteGroup struct {
	gorm.Model

	UserID uint   `gorm:"not null;uniqueIndex:idx_group_owner_name"`
	Name   string `gorm:"not null;uniqueIndex:idx_group_owner_name"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:GroupID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
