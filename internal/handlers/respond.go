package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tarimpazar/tarimpazar/internal/services"
)

// respondError converts a service error into the uniform result shape.
// Storage errors are logged with the original cause and reported generically.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrSelfTarget):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrBlocked):
		ctx.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	default:
		log.Printf("Unexpected storage error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong, please try again"})
	}
}

func respondInvalidRequest(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
}

func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
}
