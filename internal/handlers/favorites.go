package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tarimpazar/tarimpazar/db"
	"github.com/tarimpazar/tarimpazar/internal/services"
	"github.com/tarimpazar/tarimpazar/internal/utils"
)

type ToggleFavoriteRequest struct {
	TargetType string `json:"target_type" binding:"required"`
	TargetID   uint   `json:"target_id" binding:"required"`
}

type CreateFavoriteGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

type MoveFavoriteRequest struct {
	GroupID *uint `json:"group_id"`
}

type FavoriteResponse struct {
	ID         uint      `json:"id"`
	TargetType string    `json:"target_type"`
	TargetID   uint      `json:"target_id"`
	GroupID    *uint     `json:"group_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToggleFavorite(ctx *gin.Context) {
	var body ToggleFavoriteRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidRequest(ctx)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	isFavorited, err := services.ToggleFavorite(db.DB, userID, body.TargetType, body.TargetID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	message := "Removed from favorites"
	if isFavorited {
		message = "Added to favorites"
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": message, "is_favorited": isFavorited})
}

func ListFavorites(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	favorites, err := services.ListFavorites(db.DB, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]FavoriteResponse, 0, len(favorites))

	for _, favorite := range favorites {
		response = append(response, FavoriteResponse{
			ID:         favorite.ID,
			TargetType: favorite.TargetType,
			TargetID:   favorite.TargetID,
			GroupID:    favorite.GroupID,
			CreatedAt:  favorite.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Favorites retrieved", "data": response})
}

func CreateFavoriteGroup(ctx *gin.Context) {
	var body CreateFavoriteGroupRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidRequest(ctx)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	group, err := services.CreateFavoriteGroup(db.DB, userID, body.Name)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "message": "Group created", "group_id": group.ID})
}

func DeleteFavoriteGroup(ctx *gin.Context) {
	groupID, err := utils.GetGroupIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	if err := services.DeleteFavoriteGroup(db.DB, userID, groupID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Group deleted"})
}

func MoveFavoriteToGroup(ctx *gin.Context) {
	favoriteID, err := utils.GetFavoriteIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var body MoveFavoriteRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidRequest(ctx)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	if err := services.MoveFavoriteToGroup(db.DB, userID, favoriteID, body.GroupID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Favorite moved"})
}
