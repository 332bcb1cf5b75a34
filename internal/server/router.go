package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig carries the handlers and CORS settings for the API.
type RouterConfig struct {
	ContentHandler  *ContentHandler
	ProgressHandler *ProgressHandler
	AllowedOrigins  []string
	Log             *zap.Logger
}

// NewRouter builds the gin engine with all CurioLab routes mounted.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Log != nil {
		router.Use(requestLogger(cfg.Log))
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CurioLab API is running!"})
	})

	router.POST("/generate-dimensions", cfg.ContentHandler.GenerateDimensions)
	router.POST("/generate-content", cfg.ContentHandler.GenerateContent)

	api := router.Group("/api")
	{
		api.POST("/profile", cfg.ProgressHandler.CreateProfile)
		api.GET("/profile", cfg.ProgressHandler.GetProfile)
		api.PUT("/profile", cfg.ProgressHandler.UpdateProfile)
		api.DELETE("/profile", cfg.ProgressHandler.ResetProfile)

		api.POST("/sessions", cfg.ProgressHandler.StartSession)
		api.POST("/sessions/complete", cfg.ProgressHandler.CompleteSession)
		api.POST("/feedback", cfg.ProgressHandler.SubmitFeedback)

		api.GET("/progress", cfg.ProgressHandler.GetProgress)
		api.GET("/progress/stats", cfg.ProgressHandler.GetStats)
	}

	return router
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
