package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchdash/adapters/excel"
	"launchdash/internal"
	"launchdash/internal/config"
	apperrors "launchdash/internal/errors"
	"launchdash/ui"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Logging.Level))

	// Nothing can be rendered without the launch table
	ds, err := excel.LoadDataset(appConfig.Data.File)
	if err != nil {
		logger.Error("Failed to load launch data [%s]: %v", apperrors.GetCode(err), err)
		os.Exit(1)
	}
	logger.Info("Loaded %d launches across %d sites from %s", ds.Len(), len(ds.Sites()), ds.Source())

	server, err := ui.NewServer(ds, ui.Options{
		GinMode:         appConfig.Server.GinMode,
		SliderStep:      appConfig.Data.SliderStep,
		SliderMarkEvery: appConfig.Data.SliderMarkEvery,
		ChartWidth:      appConfig.Charts.Width,
		ChartHeight:     appConfig.Charts.Height,
		Logger:          logger,
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	servers := []*http.Server{server.HTTPServer(":" + appConfig.Server.Port)}
	if appConfig.Profiling.Enabled {
		servers = append(servers, &http.Server{
			Addr:              ":" + appConfig.Profiling.Port,
			Handler:           http.DefaultServeMux,
			ReadHeaderTimeout: 10 * time.Second,
		})
		logger.Info("Performance profiling enabled on :%s", appConfig.Profiling.Port)
	}

	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Info("Listening on http://localhost%s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var firstErr error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		logger.Info("Dashboard stopped")
		return firstErr
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
