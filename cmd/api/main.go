package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "recruit-kit/docs" // Swagger docs
	"recruit-kit/internal/api"
	"recruit-kit/internal/blob"
	"recruit-kit/internal/config"
	"recruit-kit/internal/convert"
	"recruit-kit/internal/holidays"
	"recruit-kit/internal/ocr"
	"recruit-kit/internal/render"
	"recruit-kit/internal/storage"
)

// @title Recruit Kit API
// @version 1.0
// @description Branded CV conversion and recruitment calculators

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api
// @schemes http https

func main() {
	cfg := config.LoadConfig()

	deps := api.Deps{
		Config:    cfg,
		Converter: convert.NewSofficeConverter(cfg.SofficePath),
		Holidays:  holidays.NewClient(cfg.HolidayAPIURL, 10*time.Second),
	}

	// Conversion log is optional
	if cfg.DatabaseURL != "" {
		log.Println("Connecting to database...")
		db, err := storage.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("db open:", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.Migrate(ctx)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		deps.Audit = db
		log.Println("Database connected successfully!")
	} else {
		log.Println("Warning: DATABASE_URL not set, conversion log disabled")
	}

	if cfg.UsesLocalOCR() {
		log.Println("Using local document analysis")
		deps.Analyzer = ocr.NewLocalAnalyzer()
	} else if err := cfg.ValidateOCR(); err != nil {
		log.Printf("Warning: %v (CV conversion will fail until configured)", err)
	} else {
		deps.Analyzer = ocr.NewAzureAnalyzer(ocr.AzureConfig{
			Endpoint:     cfg.OCREndpoint,
			Key:          cfg.OCRKey,
			Model:        cfg.OCRModel,
			APIVersion:   cfg.OCRAPIVersion,
			PollInterval: cfg.OCRPollInterval,
			MaxPolls:     cfg.OCRMaxPolls,
		})
	}

	if err := cfg.ValidateStorage(); err != nil {
		log.Printf("Warning: %v (CV conversion will fail until configured)", err)
	} else {
		store, err := blob.NewAzureStore(cfg.StorageConnectionString, cfg.StorageContainer)
		if err != nil {
			log.Fatal("blob storage:", err)
		}
		deps.Store = store
	}

	branding, err := render.LoadBranding(cfg.BrandName, cfg.LogoPath)
	if err != nil {
		log.Fatal(err)
	}
	deps.Branding = branding

	apiSrv := api.NewAPI(deps)
	defer apiSrv.Close()
	router := api.NewRouter(apiSrv)

	port := strconv.Itoa(cfg.Port)
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // file uploads
		WriteTimeout: 5 * time.Minute,  // OCR polling + rendering
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s (%s)\n", port, cfg.Environment)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
