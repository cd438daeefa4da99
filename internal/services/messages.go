package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tarimpazar/tarimpazar/internal/models"
	"gorm.io/gorm"
)

// SendMessage validates, gates on blocks, persists the message and publishes
// MessageSent. The block check runs before any write: a blocked pair gets
// neither a conversation nor a message. Repeated sends are not deduplicated;
// every successful call appends a new row.
func SendMessage(conn *gorm.DB, senderID, receiverID uint, content string) (models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return models.Message{}, fmt.Errorf("%w: message content cannot be empty", ErrValidation)
	}

	if senderID == receiverID {
		return models.Message{}, fmt.Errorf("%w: you cannot message yourself", ErrSelfTarget)
	}

	blocked, err := IsBlocked(conn, senderID, receiverID)

	if err != nil {
		return models.Message{}, err
	}

	if blocked {
		return models.Message{}, fmt.Errorf("%w: you cannot message this user", ErrBlocked)
	}

	conversation, err := FindOrCreateConversation(conn, senderID, receiverID)

	if err != nil {
		return models.Message{}, err
	}

	message := models.Message{
		ConversationID: conversation.ID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
	}

	if err := conn.Create(&message).Error; err != nil {
		return models.Message{}, err
	}

	// Conversation lists sort by latest activity; the message itself is
	// already committed, so a failed bump only costs ordering.
	if err := conn.Model(&models.Conversation{}).
		Where("id = ?", conversation.ID).
		Update("updated_at", time.Now()).Error; err != nil {
		log.Printf("Failed to refresh conversation %d activity: %v", conversation.ID, err)
	}

	// The message is committed; whatever subscribers do with the event
	// cannot unwind it.
	Publish(conn, MessageSent{Message: message})

	return message, nil
}
