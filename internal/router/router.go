package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tarimpazar/tarimpazar/internal/handlers"
	"github.com/tarimpazar/tarimpazar/internal/middleware"
	"github.com/tarimpazar/tarimpazar/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		authed := api.Group("", middleware.AuthMiddleware())
		{
			authed.POST("/messages", handlers.SendMessage)
			authed.GET("/conversations", handlers.ListConversations)
			authed.GET("/conversations/:conversation_id/messages", handlers.ListMessages)

			authed.POST("/blocks", handlers.BlockUser)
			authed.GET("/blocks", handlers.ListBlocks)
			authed.GET("/blocks/:user_id", handlers.CheckBlocked)
			authed.DELETE("/blocks/:user_id", handlers.UnblockUser)

			authed.POST("/reports", handlers.CreateReport)

			authed.GET("/notifications", handlers.ListNotifications)
			authed.POST("/notifications/read-all", handlers.MarkNotificationsRead)

			authed.POST("/favorites/toggle", handlers.ToggleFavorite)
			authed.GET("/favorites", handlers.ListFavorites)
			authed.PATCH("/favorites/:favorite_id/group", handlers.MoveFavoriteToGroup)
			authed.POST("/favorite-groups", handlers.CreateFavoriteGroup)
			authed.DELETE("/favorite-groups/:group_id", handlers.DeleteFavoriteGroup)
		}
	}

	return r
}
