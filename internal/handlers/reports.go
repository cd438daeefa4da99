package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tarimpazar/tarimpazar/db"
	"github.com/tarimpazar/tarimpazar/internal/services"
	"github.com/tarimpazar/tarimpazar/internal/utils"
)

type CreateReportRequest struct {
	ReportedUserID uint   `json:"reported_user_id" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
	ListingRef     string `json:"listing_ref"`
	ForumTopicID   uint   `json:"forum_topic_id"`
	ForumPostID    uint   `json:"forum_post_id"`
	SocialPostID   uint   `json:"social_post_id"`
}

func CreateReport(ctx *gin.Context) {
	var body CreateReportRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidRequest(ctx)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	target, err := services.ResolveReportTarget(body.ListingRef, body.ForumTopicID, body.ForumPostID, body.SocialPostID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if _, err := services.CreateReport(db.DB, userID, body.ReportedUserID, body.Reason, target); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "message": "Report received"})
}
