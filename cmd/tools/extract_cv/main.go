package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"recruit-kit/internal/cv"
	"recruit-kit/internal/ocr"
	"recruit-kit/internal/storage"
)

func main() {
	var dryRun bool
	var timeout time.Duration
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not record results in the conversion log; just print them")
	flag.DurationVar(&timeout, "timeout", time.Minute, "Max time to spend on each file")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: extract_cv [-dry-run=false] file.pdf [file.docx ...]")
	}

	var db *storage.DB
	if !dryRun {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			log.Fatal("DATABASE_URL is required when -dry-run=false")
		}
		log.Printf("Connecting to DB...")
		var err error
		db, err = storage.NewDB(dbURL)
		if err != nil {
			log.Fatalf("failed to connect to db: %v", err)
		}
		defer db.Close()
		if err := db.Migrate(context.Background()); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	analyzer := ocr.NewLocalAnalyzer()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	failed := 0
	for _, path := range files {
		start := time.Now()
		record := storage.Conversion{
			ID:        uuid.NewString(),
			FileName:  filepath.Base(path),
			CreatedAt: start.UTC(),
		}

		data, err := extract(analyzer, path, timeout)
		if err != nil {
			log.Printf("%s: %v", path, err)
			failed++
			record.Status = storage.StatusFailed
			record.ErrorMessage = err.Error()
		} else {
			record.Status = storage.StatusSucceeded
			record.CandidateName = data.PersonalInfo.Name
			for category := range data.Skills {
				record.SkillCategories = append(record.SkillCategories, category)
			}
			sort.Strings(record.SkillCategories)
			if err := enc.Encode(data); err != nil {
				log.Fatalf("encode: %v", err)
			}
		}
		record.DurationMS = time.Since(start).Milliseconds()

		if dryRun {
			log.Printf("[dry-run] %s: %s (%q, %d skill categories)", path, record.Status, record.CandidateName, len(record.SkillCategories))
			continue
		}
		if err := db.SaveConversion(context.Background(), &record); err != nil {
			log.Printf("failed to record %s: %v", path, err)
		}
	}

	log.Printf("Done: %d processed, %d failed", len(files), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func extract(analyzer ocr.Analyzer, path string, timeout time.Duration) (*cv.CVData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	doc, err := analyzer.Analyze(ctx, raw, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return cv.ExtractCVData(*doc)
}
