package routes

import (
	"net/http"

	"newsroom/controllers"
	"newsroom/handlers"
	"newsroom/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, jwtSecret string, newsController *controllers.NewsController, w *handlers.WebSocketHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", newsController.List)
	r.GET("/news", newsController.List)
	r.GET("/news/:slug", newsController.Show)
	r.GET("/feed.xml", newsController.Feed)

	if w != nil {
		r.GET("/ws/news", w.HandleWebSocket)
	}

	api := r.Group("/api/v1")
	{
		news := api.Group("/news")
		{
			news.GET("", newsController.GetNews)
			news.GET("/:slug", newsController.GetNewsBySlug)
			news.POST("", middleware.AuthRequired(jwtSecret), newsController.CreateNews)
		}
	}
}
