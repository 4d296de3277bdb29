// README: Entry point; loads config, wires collaborators and the planner, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"voyager/internal/ai"
	"voyager/internal/config"
	httptransport "voyager/internal/http"
	"voyager/internal/infra"
	"voyager/internal/maps"
	"voyager/internal/media"
	"voyager/internal/modules/planner"
	"voyager/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini init")
	}
	defer gemini.Close()

	linker, err := maps.NewLinker(cfg.Maps.APIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("maps init")
	}

	searcher := search.New(cfg.Search.TavilyKey)
	if searcher == nil {
		log.Warn().Msg("TAVILY_API_KEY is empty, web enrichment disabled")
	}
	images := media.NewFinder(cfg.Media.PexelsKey)
	if cfg.Media.PexelsKey == "" {
		log.Warn().Msg("PEXELS_API_KEY is empty, using placeholder images")
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	cache := planner.NewPlanCache(redisClient, cfg.Redis.CacheTTL)

	extractor := planner.NewExtractor(gemini, log)
	finder := planner.NewFinder(gemini, searcher, images, linker, log)
	itinerary := planner.NewItineraryBuilder(gemini, log)
	plannerSvc := planner.NewService(extractor, finder, itinerary, cache, log)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(plannerSvc, log)}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server")
	}
}
