package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marketing-insights-assistant/config"
	_ "marketing-insights-assistant/docs" // Swagger docs
	"marketing-insights-assistant/internal/assistant"
	assistantHTTP "marketing-insights-assistant/internal/assistant/delivery/http"
	"marketing-insights-assistant/internal/assistant/dispatcher"
	"marketing-insights-assistant/internal/assistant/handlers"
	"marketing-insights-assistant/internal/assistant/memory"
	"marketing-insights-assistant/internal/assistant/validation"
	"marketing-insights-assistant/internal/httpserver"
	"marketing-insights-assistant/internal/middleware"
	"marketing-insights-assistant/pkg/analyticstore"
	"marketing-insights-assistant/pkg/completion"
	"marketing-insights-assistant/pkg/gcalendar"
	"marketing-insights-assistant/pkg/log"
)

// @title       Marketing Insights Assistant API
// @description Conversational assistant for the marketing analytics dashboard: campaigns, audiences, regions and ad schedules.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Marketing Insights Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Completion provider: %s", cfg.LLM.Provider)

	// 3. Completion backend
	completionClient, err := completion.NewFromConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize completion client: ", err)
		return
	}

	// 4. Analytics store
	store := analyticstore.NewClient(cfg.AnalyticsStore.URL, cfg.AnalyticsStore.APIKey)

	// 5. Google Calendar client (optional; schedule answers degrade without it)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Conversational memory
	mem := memory.New(logger, memory.Config{
		Capacity: cfg.Assistant.MemoryCapacity,
		TTL:      cfg.Assistant.MemoryTTL,
	})

	// 7. Validation loop
	loop := validation.New(completionClient, logger, validation.Config{
		AcceptScore: cfg.Assistant.AcceptScore,
		MaxRounds:   cfg.Assistant.MaxRounds,
		Timeout:     cfg.Assistant.LoopTimeout,
	})

	// 8. Topic handlers
	registry := assistant.NewRegistry()
	registry.Register(handlers.NewCampaign(logger, store, loop, mem))
	registry.Register(handlers.NewAudience(logger, store, loop, mem))
	registry.Register(handlers.NewGeo(logger, store, loop, mem))
	registry.Register(handlers.NewSchedule(logger, calendarClient, cfg.GoogleCalendar.CalendarID, loop, mem))

	// 9. Dispatcher
	disp := dispatcher.New(registry, mem, logger, dispatcher.Config{
		DispatchThreshold: cfg.Assistant.DispatchThreshold,
		MaxQueryLength:    cfg.Assistant.MaxQueryLength,
		RecentTurnWindow:  cfg.Assistant.RecentTurnWindow,
		RandomSeed:        cfg.Assistant.RandomSeed,
	})

	// 10. HTTP server
	mw := middleware.New(logger, cfg.RateLimit)
	assistantHandler := assistantHTTP.New(logger, disp, registry)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: assistantHandler,
		Middleware:       mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
