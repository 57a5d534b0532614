package main

import (
	"log"

	"launchdash/adapters/excel"
	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/ui"

	"github.com/joho/godotenv"
)

// JSON-only launch API on chi; the full dashboard lives in the root main.
func main() {
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ds, err := excel.LoadDataset(appConfig.Data.File)
	if err != nil {
		log.Fatalf("Failed to load launch data: %v", err)
	}

	app := ui.NewApp(ds, ui.Options{
		SliderStep:      appConfig.Data.SliderStep,
		SliderMarkEvery: appConfig.Data.SliderMarkEvery,
		Logger:          internal.NewLogger(internal.ParseLogLevel(appConfig.Logging.Level)),
	})

	log.Printf("Starting launch API on http://localhost:%s", appConfig.Server.Port)
	log.Fatal(app.Start(":" + appConfig.Server.Port))
}
