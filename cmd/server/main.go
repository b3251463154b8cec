package main

import (
	"log"
	"os"
	"strconv"

	"debatearena/config"
	"debatearena/controllers"
	"debatearena/middlewares"
	"debatearena/routes"
	"debatearena/services"
	"debatearena/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for deployment platforms; missing file is fine.
	godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("No config file at %s, using defaults: %v", configPath, err)
		cfg = config.Default()
	}

	svc := services.NewDebateService(cfg.Arena)
	hub := websocket.NewHub()
	svc.SetEventHandler(hub.Broadcast)
	svc.Start()
	defer svc.Stop()

	router := setupRouter(cfg, svc, hub)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, svc *services.DebateService, hub *websocket.Hub) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middlewares.ActorHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	ctl := controllers.NewController(svc, cfg.Arena)
	routes.SetupStatusRoutes(router, ctl)

	// Command surface: the adapter forwards the acting user per request.
	arena := router.Group("/")
	arena.Use(middlewares.ActorMiddleware())
	routes.SetupArenaRoutes(arena, ctl)

	// Lifecycle event feed.
	router.GET("/ws", hub.Handler)

	return router
}
