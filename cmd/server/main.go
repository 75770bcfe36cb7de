package main

import (
	"flag"
	"log"
	"strconv"
	"time"

	"advicerater/config"
	"advicerater/middlewares"
	"advicerater/routes"
	"advicerater/services"
	"advicerater/templates"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	flag.Parse()

	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	advice := services.NewAdviceServiceFromConfig(cfg, services.NewGeminiClient)
	sessions := services.NewSessionStore(time.Duration(cfg.Session.IdleTimeout) * time.Minute)

	router := setupRouter(cfg, advice, sessions)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, advice *services.AdviceService, sessions *services.SessionStore) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})
	router.SetHTMLTemplate(templates.Load())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", routes.HealthHandler)

	app := router.Group("/")
	app.Use(middlewares.SessionMiddleware(sessions, cfg.Session.CookieName))
	routes.SetupAdviceRoutes(app, advice)

	return router
}
