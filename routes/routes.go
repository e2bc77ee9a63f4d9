package routes

import (
	"Meeple/controllers"
	"Meeple/middleware"
	"Meeple/services/scorecache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, cache *scorecache.Cache) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ping", controllers.Ping)

	router.POST("/register", controllers.Register(db))
	router.POST("/login", controllers.Login(db))

	api := router.Group("/api")
	api.Use(middleware.AuthRequired(db))
	{
		api.GET("/me", controllers.Me())
		api.PATCH("/me", controllers.UpdateMe(db))

		api.GET("/profiles", controllers.ListProfiles(db))
		api.GET("/profiles/:user_id", controllers.GetProfile(db))
		api.GET("/profiles/:user_id/friendlist", controllers.FriendList(db))

		scores := api.Group("/scores")
		{
			scores.POST("/rate/:game_id", controllers.RateGame(db, cache))
			scores.GET("/score/:game_id", controllers.AverageScore(db, cache))
			scores.GET("/my_score/:game_id", controllers.MyScore(db))
			scores.GET("/game/:game_id", controllers.ScoresByGame(db))
			scores.GET("/user/:user_id", controllers.ScoresByUser(db))
			scores.DELETE("/delete/:game_id", controllers.DeleteScore(db, cache))
		}

		friends := api.Group("/friends")
		{
			friends.POST("/add/:user_id", controllers.SendFriendRequest(db))
			friends.PUT("/accept/:user_id", controllers.AcceptFriendRequest(db))
			friends.GET("/my_requests", controllers.IncomingFriendRequests(db))
			friends.GET("/sent_requests", controllers.OutgoingFriendRequests(db))
			friends.DELETE("/remove/:user_id", controllers.RemoveFriend(db))
		}

		events := api.Group("/events")
		{
			events.POST("", controllers.CreateEvent(db))
			events.GET("", controllers.SearchEvents(db))
			events.GET("/my_events", controllers.MyEvents(db))
			events.GET("/by_user/:org_id", controllers.EventsByUser(db))
			events.GET("/:event_id", controllers.GetEvent(db))
			events.PUT("/:event_id/edit", controllers.EditEvent(db))
			events.DELETE("/:event_id", controllers.DeactivateEvent(db))
		}

		requests := api.Group("/requests")
		{
			requests.POST("/participate/:event_id", controllers.Participate(db))
			requests.PATCH("/respond/:event_id/:user_id", controllers.RespondToRequest(db))
			requests.GET("/event/:event_id", controllers.UnhandledRequests(db))
			requests.GET("/event/:event_id/all", controllers.AllRequests(db))
			requests.GET("/event/:event_id/participators", controllers.Participators(db))
			requests.GET("/event/:event_id/my_status", controllers.MyRequestStatus(db))
			requests.GET("/my_requests", controllers.MyRequests(db))
			requests.DELETE("/delete/:event_id", controllers.WithdrawRequest(db))
		}
	}
}
