package services

import (
	"errors"
	"fmt"

	"github.com/tarimpazar/tarimpazar/internal/models"
	"gorm.io/gorm"
)

// FindOrCreateConversation returns the single conversation for an unordered
// pair of users, creating it on first contact. The pair is stored with the
// smaller id first, so both argument orders hit the same row and the unique
// index closes the create race: when a concurrent caller wins the insert, the
// duplicate-key error is swallowed and the winner's row is returned.
func FindOrCreateConversation(conn *gorm.DB, userA, userB uint) (models.Conversation, error) {
	if userA == userB {
		return models.Conversation{}, fmt.Errorf("%w: you cannot start a conversation with yourself", ErrSelfTarget)
	}

	first, second := orderPair(userA, userB)

	var conversation models.Conversation

	err := conn.Where("user_a_id = ? AND user_b_id = ?", first, second).First(&conversation).Error

	if err == nil {
		return conversation, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Conversation{}, err
	}

	conversation = models.Conversation{
		UserAID: first,
		UserBID: second,
	}

	if err := conn.Create(&conversation).Error; err != nil {
		if IsDuplicateKey(err) {
			var winner models.Conversation
			if err := conn.Where("user_a_id = ? AND user_b_id = ?", first, second).First(&winner).Error; err != nil {
				return models.Conversation{}, err
			}
			return winner, nil
		}
		return models.Conversation{}, err
	}

	return conversation, nil
}

func ListConversations(conn *gorm.DB, actorID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation

	err := conn.Where("user_a_id = ? OR user_b_id = ?", actorID, actorID).
		Order("updated_at DESC").
		Find(&conversations).Error

	if err != nil {
		return nil, err
	}

	return conversations, nil
}

// ListMessages returns a conversation's messages in send order. Callers who
// are not a participant get not-found rather than a hint the thread exists.
func ListMessages(conn *gorm.DB, actorID, conversationID uint) ([]models.Message, error) {
	var conversation models.Conversation

	err := conn.Where("id = ? AND (user_a_id = ? OR user_b_id = ?)", conversationID, actorID, actorID).
		First(&conversation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: conversation not found", ErrNotFound)
		}
		return nil, err
	}

	var messages []models.Message

	err = conn.Where("conversation_id = ?", conversation.ID).
		Order("created_at ASC").
		Find(&messages).Error

	if err != nil {
		return nil, err
	}

	return messages, nil
}

func orderPair(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}
