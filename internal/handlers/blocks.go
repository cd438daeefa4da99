package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tarimpazar/tarimpazar/db"
	"github.com/tarimpazar/tarimpazar/internal/services"
	"github.com/tarimpazar/tarimpazar/internal/utils"
)

type BlockUserRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type BlockResponse struct {
	ID        uint      `json:"id"`
	BlockedID uint      `json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}

func BlockUser(ctx *gin.Context) {
	var body BlockUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidRequest(ctx)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	if err := services.BlockUser(db.DB, userID, body.UserID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "message": "User blocked"})
}

func UnblockUser(ctx *gin.Context) {
	targetID, err := utils.GetUserIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	if err := services.UnblockUser(db.DB, userID, targetID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "User unblocked"})
}

// CheckBlocked answers the symmetric predicate for the actor and the given
// user. Returns a bare boolean rather than the uniform result shape.
func CheckBlocked(ctx *gin.Context) {
	targetID, err := utils.GetUserIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	blocked, err := services.IsBlocked(db.DB, userID, targetID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"blocked": blocked})
}

func ListBlocks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	blocks, err := services.ListBlocks(db.DB, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]BlockResponse, 0, len(blocks))

	for _, block := range blocks {
		response = append(response, BlockResponse{
			ID:        block.ID,
			BlockedID: block.BlockedID,
			CreatedAt: block.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Blocks retrieved", "data": response})
}
