package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NotificationTypeMessage = "message"
	NotificationTypeSystem  = "system"
)

// Notification is written by other components as a side effect and only ever
// mutated to flip IsRead. Data carries structured context for the client,
// e.g. the conversation id behind a message notification.
type Notification struct {
	gorm.Model

	UserID  uint   `gorm:"not null;index"`
	Title   string `gorm:"not null"`
	Message string `gorm:"not null"`
	Link    string
	Type    string         `gorm:"not null"`
	IsRead  bool           `gorm:"not null;default:false"`
	Data    datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
