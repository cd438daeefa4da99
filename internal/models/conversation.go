package models

import "gorm.io/gorm"

// Conversation stores its participants canonically: UserAID is always the
// smaller id, so the pair index rejects duplicates regardless of which
// participant started the thread.
type Conversation struct {
	gorm.Model

	UserAID uint `gorm:"not null;uniqueIndex:idx_conversation_pair"`
	UserBID uint `gorm:"not null;uniqueIndex:idx_conversation_pair"`

	// Relationships
	UserA    User      `gorm:"foreignKey:UserAID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	UserB    User      `gorm:"foreignKey:UserBID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
