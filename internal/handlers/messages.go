package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tarimpazar/tarimpazar/db"
	"github.com/tarimpazar/tarimpazar/internal/services"
	"github.com/tarimpazar/tarimpazar/internal/utils"
)

type SendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type MessageResponse struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	ReceiverID     uint      `json:"receiver_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConversationResponse struct {
	ID        uint      `json:"id"`
	UserAID   uint      `json:"user_a_id"`
	UserBID   uint      `json:"user_b_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

func SendMessage(ctx *gin.Context) {
	var body SendMessageRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidRequest(ctx)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	message, err := services.SendMessage(db.DB, userID, body.ReceiverID, body.Content)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent",
		"data": MessageResponse{
			ID:             message.ID,
			ConversationID: message.ConversationID,
			SenderID:       message.SenderID,
			ReceiverID:     message.ReceiverID,
			Content:        message.Content,
			CreatedAt:      message.CreatedAt,
		},
	})
}

func ListConversations(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	conversations, err := services.ListConversations(db.DB, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ConversationResponse, 0, len(conversations))

	for _, conversation := range conversations {
		response = append(response, ConversationResponse{
			ID:        conversation.ID,
			UserAID:   conversation.UserAID,
			UserBID:   conversation.UserBID,
			UpdatedAt: conversation.UpdatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Conversations retrieved", "data": response})
}

func ListMessages(ctx *gin.Context) {
	conversationID, err := utils.GetConversationIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	messages, err := services.ListMessages(db.DB, userID, conversationID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]MessageResponse, 0, len(messages))

	for _, message := range messages {
		response = append(response, MessageResponse{
			ID:             message.ID,
			ConversationID: message.ConversationID,
			SenderID:       message.SenderID,
			ReceiverID:     message.ReceiverID,
			Content:        message.Content,
			CreatedAt:      message.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Messages retrieved", "data": response})
}
