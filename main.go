package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/OgArise/cool-app/api"
	"github.com/OgArise/cool-app/internal/config"
	"github.com/OgArise/cool-app/internal/search"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	registry := buildRegistry(cfg, log)
	cache := search.NewCache(cfg.CacheCapacity)
	orchestrator := search.NewOrchestrator(registry, cfg.SearchTimeout, log)
	aggregator := search.NewAggregator(search.DefaultScoreConfig())
	service := search.NewService(cache, orchestrator, aggregator, cfg.CacheTTL, log)

	router := api.NewRouter(api.NewSearchHandler(service, registry))

	log.Info().Str("port", cfg.AppPort).Msg("starting search API server")
	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func buildRegistry(cfg *config.Config, log zerolog.Logger) *search.Registry {
	google := search.NewGoogleProvider(cfg.GoogleAPIKey, cfg.GoogleCX)
	baidu := search.NewBaiduProvider(cfg.BaiduAPIKey, cfg.BaiduSecretKey)
	duckduckgo := search.NewDuckDuckGoProvider(cfg.RapidAPIKey, log)

	entries := []search.Registration{
		{
			Descriptor: search.ProviderDescriptor{
				Name:       google.Name(),
				Categories: google.Categories(),
				Enabled:    google.Enabled(),
				Priority:   1,
				Timeout:    10 * time.Second,
			},
			Provider: google,
		},
		{
			Descriptor: search.ProviderDescriptor{
				Name:       baidu.Name(),
				Categories: baidu.Categories(),
				Enabled:    baidu.Enabled(),
				Priority:   2,
				Timeout:    15 * time.Second,
			},
			Provider: baidu,
		},
		{
			Descriptor: search.ProviderDescriptor{
				Name:       duckduckgo.Name(),
				Categories: duckduckgo.Categories(),
				Enabled:    true, // free adapter needs no credentials
				Priority:   3,
				Timeout:    10 * time.Second,
			},
			Provider: duckduckgo,
		},
	}

	if news, err := search.NewNewsProvider(cfg.NewsSourceURL); err == nil {
		entries = append(entries, search.Registration{
			Descriptor: search.ProviderDescriptor{
				Name:       news.Name(),
				Categories: news.Categories(),
				Enabled:    true,
				Priority:   4,
				Timeout:    15 * time.Second,
			},
			Provider: news,
		})
	} else {
		log.Warn().Err(err).Msg("news provider disabled")
	}

	return search.NewRegistry(log, entries...)
}
