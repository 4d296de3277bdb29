package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"voyager/internal/ai"
	"voyager/internal/config"
	"voyager/internal/infra"
	"voyager/internal/maps"
	"voyager/internal/media"
	"voyager/internal/modules/planner"
	"voyager/internal/search"
)

func main() {
	userInput := strings.Join(os.Args[1:], " ")
	if userInput == "" {
		userInput = "5 days in Lisbon for 2 people, budget $1500, love food and history"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	logger := infra.NewLogger("dev")

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer gemini.Close()

	linker, err := maps.NewLinker(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("Failed to initialize maps linker: %v", err)
	}

	svc := planner.NewService(
		planner.NewExtractor(gemini, logger),
		planner.NewFinder(gemini, search.New(cfg.Search.TavilyKey), media.NewFinder(cfg.Media.PexelsKey), linker, logger),
		planner.NewItineraryBuilder(gemini, logger),
		planner.NewPlanCache(nil, 0),
		logger,
	)

	fmt.Printf("User: %s\n", userInput)

	state, err := svc.Plan(ctx, userInput)
	if err != nil {
		log.Fatalf("Error planning trip: %v", err)
	}

	out, _ := json.MarshalIndent(state, "", "  ")
	fmt.Println(string(out))
}
