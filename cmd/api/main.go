package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"imagecraft/internal/http/handlers"
	"imagecraft/internal/http/httpapi"
	"imagecraft/internal/i18n"
	"imagecraft/internal/imagegen"
	"imagecraft/internal/infra"
	"imagecraft/internal/infra/geoip"
	"imagecraft/internal/middleware"
	"imagecraft/internal/providers/image"
	"imagecraft/internal/providers/prompt"
	"imagecraft/internal/storage"
	"imagecraft/internal/web"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	generator, err := image.NewGenerator(image.Options{
		Provider: cfg.ImageProvider,
		OpenAI: image.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
		},
		Gemini: image.GeminiOptions{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiImageModel,
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure image provider")
	}
	if cfg.ImageProvider == image.ProviderOpenAI && cfg.OpenAIAPIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY is not set; generation requests will fail")
	}
	if cfg.ImageProvider == image.ProviderGemini && cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY is not set; generation requests will fail")
	}

	var countryLookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		defer resolver.Close()
		countryLookup = resolver.CountryCode
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load ui templates")
	}

	store := storage.NewMemStore()
	client := imagegen.NewClient(prompt.NewStaticEnhancer(), generator, logger)
	app := handlers.NewApp(logger, store, client, renderer)

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		DefaultLocale:  i18n.Locale(cfg.DefaultLocale),
		CountryLookup:  countryLookup,
		Static:         renderer.Static(),
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Str("provider", cfg.ImageProvider).
			Msg("imagecraft listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
