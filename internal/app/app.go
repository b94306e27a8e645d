package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	vidtubeHTTP "vidtube/internal/controller/http"
	"vidtube/internal/repo/history"
	"vidtube/internal/repo/persistent"
	"vidtube/internal/usecase"
	"vidtube/pkg/config"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/middleware"
	"vidtube/pkg/queue"
	"vidtube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "vidtube/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client, payments usecase.PaymentVerifier) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)
	watchHistory := history.NewStore(redisClient)

	// The queue client is optional; a nil Notifier disables fan-out.
	var notifier usecase.Notifier
	if queueClient != nil {
		notifier = queueClient
	}

	// Use cases
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, notifier, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, notifier, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, likeRepo, subscriptionRepo, playlistRepo, watchHistory, s3Client, log)
	userUseCase := usecase.NewUserUseCase(userRepo, videoRepo, subscriptionRepo, watchHistory, payments, s3Client, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, likeRepo, userRepo)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, userRepo, likeRepo)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, userRepo)

	// HTTP handlers
	likeHandler := vidtubeHTTP.NewLikeHandler(likeUseCase, log)
	subscriptionHandler := vidtubeHTTP.NewSubscriptionHandler(subscriptionUseCase, log)
	videoHandler := vidtubeHTTP.NewVideoHandler(videoUseCase, log)
	userHandler := vidtubeHTTP.NewUserHandler(userUseCase, log)
	tweetHandler := vidtubeHTTP.NewTweetHandler(tweetUseCase, log)
	commentHandler := vidtubeHTTP.NewCommentHandler(commentUseCase, log)
	playlistHandler := vidtubeHTTP.NewPlaylistHandler(playlistUseCase, log)

	// Setup router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	// Registration has no auth requirement.
	api.POST("/users/register", userHandler.Register)

	// Read surfaces accept anonymous viewers; a valid token only enables
	// the viewer-relative flags.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		public.GET("/videos", videoHandler.ListVideos)
		public.GET("/videos/:id", videoHandler.GetVideo)
		public.GET("/videos/:id/comments", commentHandler.GetVideoComments)
		public.GET("/channels/:channel_id", userHandler.GetChannelProfile)
		public.GET("/channels/:channel_id/videos", videoHandler.GetChannelVideos)
		public.GET("/channels/:channel_id/tweets", tweetHandler.GetChannelTweets)
		public.GET("/channels/:channel_id/subscribers", subscriptionHandler.GetSubscribers)
		public.GET("/channels/:channel_id/playlists", playlistHandler.GetChannelPlaylists)
		public.GET("/playlists/:id", playlistHandler.GetPlaylist)
	}

	// Everything that mutates or is viewer-private requires a token.
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	{
		authed.POST("/likes/:kind/:id", likeHandler.ToggleLike)
		authed.GET("/likes/videos", likeHandler.GetLikedVideos)

		authed.POST("/subscriptions/:channel_id", subscriptionHandler.ToggleSubscription)
		authed.GET("/subscriptions", subscriptionHandler.GetSubscribedChannels)

		authed.POST("/videos", videoHandler.UploadVideo)
		authed.PATCH("/videos/:id", videoHandler.UpdateVideo)
		authed.DELETE("/videos/:id", videoHandler.DeleteVideo)

		authed.POST("/videos/:id/comments", commentHandler.AddComment)
		authed.DELETE("/comments/:id", commentHandler.DeleteComment)

		authed.POST("/tweets", tweetHandler.CreateTweet)
		authed.PATCH("/tweets/:id", tweetHandler.UpdateTweet)
		authed.DELETE("/tweets/:id", tweetHandler.DeleteTweet)

		authed.POST("/playlists", playlistHandler.CreatePlaylist)
		authed.PATCH("/playlists/:id", playlistHandler.RenamePlaylist)
		authed.DELETE("/playlists/:id", playlistHandler.DeletePlaylist)
		authed.POST("/playlists/:id/videos/:video_id", playlistHandler.ToggleVideo)

		authed.GET("/users/history", userHandler.GetWatchHistory)
		authed.POST("/users/premium/confirm", userHandler.ConfirmPremium)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("vidtube starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down vidtube...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("vidtube exited")
}
