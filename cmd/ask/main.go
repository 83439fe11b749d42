package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"stockassistant/internal/app"
	"stockassistant/internal/config"
)

const defaultQuestion = "Will tesla stock grow in the next 2 weeks?"

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	question := defaultQuestion
	if len(os.Args) > 1 {
		question = strings.Join(os.Args[1:], " ")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error building assistant: %v", err)
	}
	defer a.Close()

	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Printf("Question: %s\n", question)
	fmt.Println(rule)
	fmt.Println()
	fmt.Println(a.Assistant.Process(context.Background(), question))
	fmt.Println(strings.Repeat("-", 60))
}
