package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"stockassistant/internal/app"
	"stockassistant/internal/config"
	"stockassistant/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error building assistant: %v", err)
	}
	defer a.Close()

	askHandler := handler.NewAskHandler(a.Assistant, a.Sectors)

	var answerStore handler.AnswerStore
	if a.Answers != nil {
		answerStore = a.Answers
	}
	answerHandler := handler.NewAnswerHandler(answerStore)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/ask", askHandler.Ask)
	r.GET("/sectors", askHandler.GetSectors)
	r.GET("/answers", answerHandler.GetAnswers)
	r.GET("/health", answerHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
