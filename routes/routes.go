package routes

import (
	"github.com/gin-gonic/gin"

	"mentorhub-chat/controllers"
	"mentorhub-chat/middleware"
)

func ChatRouter(r *gin.Engine) {
	r.GET("/health", controllers.Health)
	r.POST("/auth/login", controllers.Login)

	// The websocket handshake carries its token in the query string
	// and authenticates itself, so it skips the header middleware.
	r.GET("/ws", controllers.WebSocketHandler)

	r.GET("/rooms/:roomId/messages", middleware.Auth(), controllers.RoomHistory)
	r.POST("/rooms/:roomId/messages", middleware.Auth(), controllers.RoomSend)
	r.GET("/dm/:a/:b/messages", middleware.Auth(), controllers.DMHistory)
	r.POST("/dm/:a/:b/messages", middleware.Auth(), controllers.DMSend)
	r.GET("/dashboard", middleware.Auth(), controllers.Dashboard)
}
