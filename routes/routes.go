// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"wanderlog-api/config"
	"wanderlog-api/controllers"
	"wanderlog-api/middleware"
	"wanderlog-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Services
	tokens := services.NewTokenService(cfg.JWTSecret)
	graph := services.NewGraphService(db)

	// Controllers
	authController := controllers.NewAuthController(db, tokens, emailService)
	userController := controllers.NewUserController(db, graph)
	tripController := controllers.NewTripController(db, graph)
	entryController := controllers.NewEntryController(db, graph)
	commentController := controllers.NewCommentController(db, graph)
	searchController := controllers.NewSearchController(db)
	externalController := controllers.NewExternalController()

	requireAuth := middleware.AuthMiddleware(tokens)
	optionalAuth := middleware.OptionalAuthMiddleware(tokens)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "Server is up and running"})
	})

	// Auth routes (public, rate limited)
	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/register", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.GET("/me", requireAuth, authController.Me)
	}

	// User routes
	users := api.Group("/users")
	{
		users.GET("/profile", requireAuth, userController.GetProfile)
		users.PUT("/profile", requireAuth, userController.UpdateProfile)
		users.GET("/search", userController.SearchUsers)
		users.GET("/:id", requireAuth, userController.GetUser)
		users.POST("/:id/follow", requireAuth, userController.FollowUser)
		users.GET("/:id/followers", userController.GetFollowers)
		users.GET("/:id/following", userController.GetFollowing)
	}

	// Trip routes; reads take an optional token so owners can see their
	// private trips
	trips := api.Group("/trips")
	{
		trips.GET("/", optionalAuth, tripController.GetTrips)
		trips.GET("/user/:userId", optionalAuth, tripController.GetTripsByUser)
		trips.POST("/", requireAuth, tripController.CreateTrip)
		trips.GET("/:id", optionalAuth, tripController.GetTrip)
		trips.PUT("/:id", requireAuth, tripController.UpdateTrip)
		trips.DELETE("/:id", requireAuth, tripController.DeleteTrip)
	}

	// Journal entry routes
	entries := api.Group("/entries")
	{
		entries.GET("/trip/:tripId", optionalAuth, entryController.GetEntriesByTrip)
		entries.POST("/", requireAuth, entryController.CreateEntry)
		entries.GET("/:id", optionalAuth, entryController.GetEntry)
		entries.PUT("/:id", requireAuth, entryController.UpdateEntry)
		entries.DELETE("/:id", requireAuth, entryController.DeleteEntry)
		entries.POST("/:id/like", requireAuth, entryController.LikeEntry)
		entries.POST("/:id/comment", requireAuth, entryController.AddComment)
		entries.DELETE("/:id/comments/:commentId", requireAuth, entryController.DeleteComment)
	}

	// Comment routes
	comments := api.Group("/comments")
	{
		comments.POST("/:id/like", requireAuth, commentController.LikeComment)
	}

	// Search routes (public material only)
	search := api.Group("/search")
	{
		search.GET("/trips", searchController.SearchTrips)
		search.GET("/entries", searchController.SearchEntries)
	}

	// External provider mocks
	external := api.Group("/external")
	external.Use(requireAuth)
	{
		external.GET("/weather/:location/:date", externalController.GetWeather)
		external.GET("/currency/:from/:to", externalController.GetCurrency)
		external.POST("/upload/photos", externalController.UploadPhotos)
	}
}
