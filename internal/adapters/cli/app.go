package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/hollandre/fitscan/internal/adapters/cache"
	"github.com/hollandre/fitscan/internal/adapters/genai"
	"github.com/hollandre/fitscan/internal/adapters/library"
	"github.com/hollandre/fitscan/internal/application"
	"github.com/hollandre/fitscan/internal/config"
	"github.com/hollandre/fitscan/internal/ports"
	"github.com/hollandre/fitscan/internal/retry"
)

// App holds all application dependencies
type App struct {
	Config  *config.Config
	Cache   ports.AnalysisCache
	Library ports.ExerciseLibrary

	LibrarySvc *application.LibraryService
	CacheSvc   *application.CacheService

	policy   retry.Policy
	analyzer ports.VideoAnalyzer
}

// NewApp creates and wires up all dependencies. The model analyzer is not
// created here: cache and library commands work without an API key, so the
// analyzer is built lazily by AnalyzeService/PlanService.
func NewApp() (*App, error) {
	// Ensure directories exist
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	// Load config
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	// Parse cache retention
	retention, err := cfg.GetRetention()
	if err != nil {
		retention = 30 * 24 * time.Hour // Default
	}

	// Create adapters
	cacheStore := cache.NewBlobCache(cfg.CachePath(), retention)
	lib, err := library.Open(cfg.LibraryPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open exercise library: %w", err)
	}

	policy := retry.DefaultPolicy()
	if cfg.Retry.MaxRetries > 0 {
		policy.MaxRetries = cfg.Retry.MaxRetries
	}
	if delay, err := cfg.GetInitialDelay(); err == nil {
		policy.InitialDelay = delay
	}

	// Create services
	librarySvc := application.NewLibraryService(lib)
	cacheSvc := application.NewCacheService(cacheStore)

	return &App{
		Config:     cfg,
		Cache:      cacheStore,
		Library:    lib,
		LibrarySvc: librarySvc,
		CacheSvc:   cacheSvc,
		policy:     policy,
	}, nil
}

// Analyzer returns the shared model analyzer, creating it on first use.
// Requires an API key in the configured environment variable.
func (a *App) Analyzer(ctx context.Context) (ports.VideoAnalyzer, error) {
	if a.analyzer != nil {
		return a.analyzer, nil
	}

	key := a.Config.APIKey()
	if key == "" {
		return nil, fmt.Errorf("no API key found: set %s in your environment", a.Config.Defaults.APIKeyEnv)
	}

	analyzer, err := genai.New(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize model client: %w", err)
	}
	a.analyzer = analyzer
	return analyzer, nil
}

// AnalyzeService builds the analysis service, initializing the analyzer
func (a *App) AnalyzeService(ctx context.Context) (*application.AnalyzeService, error) {
	analyzer, err := a.Analyzer(ctx)
	if err != nil {
		return nil, err
	}
	return application.NewAnalyzeService(a.Cache, analyzer, a.policy), nil
}

// PlanService builds the plan generation service, initializing the analyzer
func (a *App) PlanService(ctx context.Context) (*application.PlanService, error) {
	analyzer, err := a.Analyzer(ctx)
	if err != nil {
		return nil, err
	}
	return application.NewPlanService(a.Library, analyzer, a.policy), nil
}

// Close releases held resources
func (a *App) Close() error {
	return a.Library.Close()
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
