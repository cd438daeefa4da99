package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetUserIDParam(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "user_id", "User ID")
}

func GetConversationIDParam(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "conversation_id", "Conversation ID")
}

func GetGroupIDParam(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "group_id", "Group ID")
}

func GetFavoriteIDParam(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "favorite_id", "Favorite ID")
}

func parseIDParam(ctx *gin.Context, name, label string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, errors.New(label + " not found")
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil || id == 0 {
		return 0, errors.New("Invalid " + label)
	}

	return uint(id), nil
}
