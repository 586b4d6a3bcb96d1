package main

import (
	"log"

	"newsroom/config"
	"newsroom/controllers"
	"newsroom/database"
	"newsroom/handlers"
	"newsroom/middleware"
	"newsroom/routes"
	"newsroom/services"
	"newsroom/templates"
	"newsroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "newsroom/docs"
)

// @title News API
// @version 1.0
// @description Public news listing and operator publishing API

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg, database.LogLevel(cfg))
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	views, err := templates.Load()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetHTMLTemplate(views)

	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Logger())
	r.Use(middleware.ErrorHandler())

	store := services.NewNewsStore(db)
	hubService := services.NewHubService()

	newsController := controllers.NewNewsController(
		cfg,
		services.NewNewsService(store, cfg.BaseURL),
		services.NewAddPostWorkflow(store, utils.NewValidator()),
		hubService,
	)
	wsHandler := handlers.NewWebSocketHandler(hubService, cfg.AllowedOrigins)

	routes.SetupRoutes(r, cfg.JWTSecret, newsController, wsHandler)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Swagger docs available at: http://localhost:%s/swagger/index.html", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
