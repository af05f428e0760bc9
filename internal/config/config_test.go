package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.OCRModel != "prebuilt-layout" || cfg.OCRAPIVersion != "2023-07-31" {
			t.Errorf("OCR defaults = %q %q", cfg.OCRModel, cfg.OCRAPIVersion)
		}
		if cfg.SASExpiry != time.Hour || cfg.OCRPollInterval != 2*time.Second {
			t.Errorf("durations = %v %v", cfg.SASExpiry, cfg.OCRPollInterval)
		}
		if cfg.MaxUploadBytes != 20<<20 {
			t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("OCR_ENDPOINT", "https://ocr.example.com")
		t.Setenv("OCR_POLL_INTERVAL", "500ms")
		t.Setenv("ENVIRONMENT", "development")
		t.Setenv("PORT", "9090")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.OCREndpoint != "https://ocr.example.com" || cfg.OCRPollInterval != 500*time.Millisecond {
			t.Errorf("cfg = %+v", cfg)
		}
		if !cfg.IsDevelopment() || cfg.Port != 9090 {
			t.Errorf("Environment = %q, Port = %d", cfg.Environment, cfg.Port)
		}
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "storage_container: branded\nsas_expiry: 30m\n"
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.StorageContainer != "branded" || cfg.SASExpiry != 30*time.Minute {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Load() with a missing file should fail")
		}
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{OCRProvider: "azure", StorageContainer: "cvs"}

	if err := cfg.ValidateOCR(); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("ValidateOCR() = %v, want ErrMissingCredentials", err)
	}
	if err := cfg.ValidateStorage(); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("ValidateStorage() = %v, want ErrMissingCredentials", err)
	}

	cfg.OCREndpoint, cfg.OCRKey = "https://ocr.example.com", "key"
	cfg.StorageConnectionString = "UseDevelopmentStorage=true"
	if err := cfg.ValidateOCR(); err != nil {
		t.Errorf("ValidateOCR() = %v", err)
	}
	if err := cfg.ValidateStorage(); err != nil {
		t.Errorf("ValidateStorage() = %v", err)
	}

	local := &Config{OCRProvider: "local"}
	if err := local.ValidateOCR(); err != nil {
		t.Errorf("local ValidateOCR() = %v", err)
	}
}

func TestAccountManagers(t *testing.T) {
	const raw = `[
		{"id": "am1", "name": "Sam Lee", "email": "sam@example.com", "phone": "0400 000 000"},
		{"id": "am2", "name": "Alex Kim", "email": "alex@example.com", "title": "Account Director"}
	]`
	cfg := &Config{AccountManagers: raw}

	t.Run("by id", func(t *testing.T) {
		m, err := cfg.ResolveAccountManager("am2")
		if err != nil {
			t.Fatalf("ResolveAccountManager() error = %v", err)
		}
		if m.Name != "Alex Kim" || m.Title != "Account Director" {
			t.Errorf("got %+v", m)
		}
	})

	t.Run("unknown id falls back to the first", func(t *testing.T) {
		m, err := cfg.ResolveAccountManager("missing")
		if err != nil {
			t.Fatalf("ResolveAccountManager() error = %v", err)
		}
		if m.ID != "am1" {
			t.Errorf("got %+v", m)
		}
	})

	for name, raw := range map[string]string{
		"empty":         "",
		"not json":      "am1,am2",
		"empty list":    "[]",
		"missing email": `[{"id": "am1", "name": "Sam"}]`,
		"wrong id type": `[{"id": 7, "name": "Sam", "email": "s@x.io"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseAccountManagers(raw); !errors.Is(err, ErrAccountManagers) {
				t.Errorf("ParseAccountManagers() = %v, want ErrAccountManagers", err)
			}
		})
	}
}
