package models

import "gorm.io/gorm"

// Forum and social content is managed elsewhere; these tables exist as
// report targets.

type ForumTopic struct {
	gorm.Model

	AuthorID uint   `gorm:"not null;index"`
	Title    string `gorm:"not null"`

	Author User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

type ForumPost struct {
	gorm.Model

	TopicID  uint   `gorm:"not null;index"`
	AuthorID uint   `gorm:"not null;index"`
	Body     string `gorm:"type:text;not null"`

	Topic  ForumTopic `gorm:"foreignKey:TopicID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Author User       `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

type SocialPost struct {
	gorm.Model

	AuthorID uint   `gorm:"not null;index"`
	Body     string `gorm:"type:text;not null"`

	Author User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
