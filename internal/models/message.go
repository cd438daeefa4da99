package models

import "gorm.io/gorm"

// Message rows are append-only; nothing in the service layer updates or
// deletes them.
type Message struct {
	gorm.Model

	ConversationID uint   `gorm:"not null;index"`
	SenderID       uint   `gorm:"not null;index"`
	ReceiverID     uint   `gorm:"not null;index"`
	Content        string `gorm:"type:text;not null"`

	// Relationships
	Conversation Conversation `gorm:"foreignKey:ConversationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Sender       User         `gorm:"foreignKey:SenderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Receiver     User         `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
