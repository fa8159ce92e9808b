package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"logistics/cmd"
	inhttp "logistics/internal/adapters/in/http"
)

const defaultHTTPClientTimeoutSeconds = 30

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	server := inhttp.NewServer(
		app.CreateSaveComputedRouteCommandHandler(),
		app.CreateReviseRouteCommandHandler(),
		app.CreateCompleteRouteCommandHandler(),
		app.CreateCancelRouteCommandHandler(),
		app.CreateAssignOrdersCommandHandler(),
		app.CreateComputeCandidateRouteQueryHandler(),
		app.CreateGetSuitableCouriersQueryHandler(),
		app.CreateGetOrderZonesQueryHandler(),
		app.CreateGetCourierStatusQueryHandler(),
		app.CreateGetCourierStatisticsQueryHandler(),
		app.CreateGetRoutePlanningDataQueryHandler(),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(inhttp.RequestID())
	e.Use(inhttp.RequestLogger(logger))
	server.RegisterRoutes(e)

	if configs.StatisticsJobEnabled {
		jobManager := app.CreateJobManager(logger)
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		BackendBaseURL:           goDotEnvVariable("BACKEND_BASE_URL"),
		OptimizerBaseURL:         goDotEnvVariable("OPTIMIZER_BASE_URL"),
		HTTPClientTimeoutSeconds: defaultHTTPClientTimeoutSeconds,
		StatisticsJobEnabled:     os.Getenv("STATISTICS_REFRESH_CRON_ENABLED") == "true",
	}

	if raw := os.Getenv("HTTP_CLIENT_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid HTTP_CLIENT_TIMEOUT_SECONDS: %v", err)
		}
		config.HTTPClientTimeoutSeconds = seconds
	}

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
