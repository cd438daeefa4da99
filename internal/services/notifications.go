package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/tarimpazar/tarimpazar/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateNotification is best-effort: a failed insert is logged and swallowed
// so the triggering action never fails on its account.
func CreateNotification(conn *gorm.DB, userID uint, title, message, link, notificationType string, data datatypes.JSON) {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Link:    link,
		Type:    notificationType,
		Data:    data,
	}

	if err := conn.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for user %d: %v", userID, err)
	}
}

// MarkAllNotificationsRead flips every unread notification of the actor.
// Nothing unread is a successful no-op.
func MarkAllNotificationsRead(conn *gorm.DB, actorID uint) error {
	return conn.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", actorID, false).
		Update("is_read", true).Error
}

func ListNotifications(conn *gorm.DB, actorID uint) ([]models.Notification, error) {
	var notifications []models.Notification

	err := conn.Where("user_id = ?", actorID).
		Order("created_at DESC").
		Find(&notifications).Error

	if err != nil {
		return nil, err
	}

	return notifications, nil
}

var registerOnce sync.Once

// RegisterDefaultSubscribers wires the notification fan-out to the domain
// events. Safe to call more than once.
func RegisterDefaultSubscribers() {
	registerOnce.Do(func() {
		Subscribe(fanOut)
	})
}

func fanOut(conn *gorm.DB, event Event) {
	switch e := event.(type) {
	case MessageSent:
		data, err := json.Marshal(map[string]uint{
			"conversation_id": e.Message.ConversationID,
			"sender_id":       e.Message.SenderID,
		})
		if err != nil {
			log.Printf("Failed to marshal notification data: %v", err)
			data = nil
		}

		CreateNotification(
			conn,
			e.Message.ReceiverID,
			"New message",
			"You have received a new message",
			fmt.Sprintf("/messages/%d", e.Message.ConversationID),
			models.NotificationTypeMessage,
			data,
		)
	case ReportFiled:
		// Moderators are alerted out of band; the reported user is not
		// notified.
		go func(report models.Report) {
			if err := SendModerationAlert(report); err != nil {
				log.Printf("Failed to send moderation alert for report %d: %v", report.ID, err)
			}
		}(e.Report)
	}
}
