package models

import "gorm.io/gorm"

const (
	FavoriteTargetProduct    = "product"
	FavoriteTargetJobPosting = "job_posting"
)

type Favorite struct {
	gorm.Model

	UserID     uint   `gorm:"not null;uniqueIndex:idx_favorite_target"`
	TargetType string `gorm:"not null;uniqueIndex:idx_favorite_target"`
	TargetID   uint   `gorm:"not null;uniqueIndex:idx_favorite_target"`
	GroupID    *uint  `gorm:"index"`

	// Relationships
	User  User           `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Group *FavoriteGroup `gorm:"foreignKey:GroupID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
