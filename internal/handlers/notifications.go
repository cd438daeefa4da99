package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tarimpazar/tarimpazar/db"
	"github.com/tarimpazar/tarimpazar/internal/services"
	"github.com/tarimpazar/tarimpazar/internal/utils"
	"gorm.io/datatypes"
)

type NotificationResponse struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Link      string         `json:"link,omitempty"`
	Type      string         `json:"type"`
	IsRead    bool           `json:"is_read"`
	Data      datatypes.JSON `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func ListNotifications(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	notifications, err := services.ListNotifications(db.DB, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]NotificationResponse, 0, len(notifications))

	for _, notification := range notifications {
		response = append(response, NotificationResponse{
			ID:        notification.ID,
			Title:     notification.Title,
			Message:   notification.Message,
			Link:      notification.Link,
			Type:      notification.Type,
			IsRead:    notification.IsRead,
			Data:      notification.Data,
			CreatedAt: notification.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Notifications retrieved", "data": response})
}

func MarkNotificationsRead(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	if err := services.MarkAllNotificationsRead(db.DB, userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Notifications marked as read"})
}
