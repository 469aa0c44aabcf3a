package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"minit-mesyuarat/internal/config"
	"minit-mesyuarat/internal/handler"
	"minit-mesyuarat/internal/logger"
	"minit-mesyuarat/internal/middleware"
	"minit-mesyuarat/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	minutesSvc := service.NewMinutesService(db, cfg.Render, cfg.Archive)
	authSvc := service.NewAuthService(db)

	minutesH := handler.NewMinutesHandler(minutesSvc, cfg.Archive.ExportDir)
	authH := handler.NewAuthHandler(authSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Minit-Warnings"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)
	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/templates", minutesH.Templates)
	api.POST("/minit/pdf", minutesH.Generate)
	api.GET("/minit", minutesH.Archives)
	api.POST("/minit/export", minutesH.Export)
	api.GET("/files/:name", minutesH.DownloadFile)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
