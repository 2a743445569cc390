package container

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ableworks/ableworks-backend/internal/catalog"
	"github.com/ableworks/ableworks-backend/internal/config"
	httpdelivery "github.com/ableworks/ableworks-backend/internal/delivery/http"
	"github.com/ableworks/ableworks-backend/internal/delivery/http/handler"
	"github.com/ableworks/ableworks-backend/internal/fallback"
	"github.com/ableworks/ableworks-backend/internal/infrastructure/gemini"
	"github.com/ableworks/ableworks-backend/internal/infrastructure/server"
	"github.com/ableworks/ableworks-backend/internal/usecase/aggregate"
	"github.com/ableworks/ableworks-backend/internal/usecase/jobsearch"
	"github.com/ableworks/ableworks-backend/internal/usecase/places"
	"github.com/ableworks/ableworks-backend/internal/usecase/simplify"
	"github.com/ableworks/ableworks-backend/internal/usecase/training"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	setupLogger(cfg.Logging.Level)

	// Catalogs are built once and read-only afterwards.
	cat := catalog.New()
	resolver := fallback.NewResolver(cat, time.Now().UnixNano())

	// A missing API key is not an error: the whole service runs on
	// fallback content until one is configured.
	geminiClient, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
	}
	if geminiClient == nil {
		slog.Warn("GEMINI_API_KEY not configured, serving fallback content only")
	}

	// Initialize use cases
	searchUseCase := newSearchUseCase(geminiClient, resolver)
	simplifyUseCase := newSimplifyUseCase(geminiClient, resolver)
	trainingUseCase := newTrainingUseCase(geminiClient, resolver)
	aggregator := aggregate.NewAggregator(searchUseCase, simplifyUseCase, trainingUseCase)
	placesClient := places.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.Timeout)

	// Initialize handlers
	jobsHandler := handler.NewJobsHandler(searchUseCase, simplifyUseCase, trainingUseCase)
	profileHandler := handler.NewProfileHandler(cat)
	resultsHandler := handler.NewResultsHandler(aggregator)
	placesHandler := handler.NewPlacesHandler(placesClient)

	// Initialize router
	router := httpdelivery.NewRouter(
		jobsHandler,
		profileHandler,
		resultsHandler,
		placesHandler,
		cfg.CORS.AllowedOrigins,
	)

	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// A nil *gemini.Client must stay a nil interface inside the usecases, so
// the conversion happens here rather than at the call sites.
func newSearchUseCase(client *gemini.Client, resolver *fallback.Resolver) *jobsearch.UseCase {
	var gen jobsearch.Generator
	if client != nil {
		gen = client
	}
	return jobsearch.NewUseCase(gen, resolver)
}

func newSimplifyUseCase(client *gemini.Client, resolver *fallback.Resolver) *simplify.UseCase {
	var gen simplify.Generator
	if client != nil {
		gen = client
	}
	return simplify.NewUseCase(gen, resolver)
}

func newTrainingUseCase(client *gemini.Client, resolver *fallback.Resolver) *training.UseCase {
	var gen training.Generator
	if client != nil {
		gen = client
	}
	return training.NewUseCase(gen, resolver)
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}
	return nil
}
