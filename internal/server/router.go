package server

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/playverse/backend/internal/handlers"
	"github.com/playverse/backend/internal/middleware"
	"github.com/playverse/backend/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	jwtMgr *auth.JWTManager,
	rdb *redis.Client,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	roomH *handlers.RoomHandler,
	msgH *handlers.MessageHandler,
) {
	requireAuth := middleware.RequireAuth(jwtMgr, rdb)
	optionalAuth := middleware.OptionalAuth(jwtMgr, rdb)

	users := r.Group("/users")
	{
		users.GET("/ping", userH.Ping)
		users.GET("", userH.ListUsers)
		users.POST("/register", authH.Register)
		users.POST("/login", authH.Login)
		users.POST("/signout", requireAuth, authH.Signout)
		users.GET("/me", requireAuth, userH.GetMe)
		users.GET("/coins/:username", userH.GetCoins)
		users.POST("/coins/:username", requireAuth, userH.UpdateCoins)
	}

	rooms := r.Group("/rooms")
	{
		rooms.POST("", requireAuth, roomH.CreateRoom)
		rooms.GET("", roomH.ListRooms)
		rooms.GET("/find/:name", roomH.FindRoom)
		rooms.GET("/user", requireAuth, roomH.GetMyRooms)
		rooms.GET("/private/:userA/:userB", msgH.GetPrivateMessages)
		rooms.POST("/:roomId/join", optionalAuth, roomH.JoinRoom)
		rooms.POST("/:roomId/leave", requireAuth, roomH.LeaveRoom)
		rooms.GET("/:roomId/messages", msgH.GetRoomMessages)
		rooms.POST("/:roomId/messages", requireAuth, msgH.PostMessage)
	}
}
