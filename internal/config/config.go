package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingCredentials is returned when a collaborator is used without the
// environment variables it needs.
var ErrMissingCredentials = errors.New("missing credentials")

type Config struct {
	Port        int    `mapstructure:"port"`
	Environment string `mapstructure:"environment"` // "production" or "development"
	DatabaseURL string `mapstructure:"database_url"`

	// OCR
	OCRProvider     string        `mapstructure:"ocr_provider"` // "azure" or "local"
	OCREndpoint     string        `mapstructure:"ocr_endpoint"`
	OCRKey          string        `mapstructure:"ocr_key"`
	OCRModel        string        `mapstructure:"ocr_model"`
	OCRAPIVersion   string        `mapstructure:"ocr_api_version"`
	OCRPollInterval time.Duration `mapstructure:"ocr_poll_interval"`
	OCRMaxPolls     int           `mapstructure:"ocr_max_polls"`

	// Blob storage
	StorageConnectionString string        `mapstructure:"storage_connection_string"`
	StorageContainer        string        `mapstructure:"storage_container"`
	SASExpiry               time.Duration `mapstructure:"sas_expiry"`

	// Document generation
	SofficePath     string `mapstructure:"soffice_path"` // empty disables Word conversion
	AccountManagers string `mapstructure:"account_managers"`
	BrandName       string `mapstructure:"brand_name"`
	LogoPath        string `mapstructure:"logo_path"`

	// Calculators
	HolidayAPIURL  string `mapstructure:"holiday_api_url"`
	DefaultCountry string `mapstructure:"default_country"`

	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

// DefaultHolidayAPIURL is the public holiday service used by the working-days
// calculator.
const DefaultHolidayAPIURL = "https://date.nager.at/api/v3"

var defaults = map[string]any{
	"port":                      8080,
	"environment":               "production",
	"database_url":              "",
	"ocr_provider":              "azure",
	"ocr_endpoint":              "",
	"ocr_key":                   "",
	"ocr_model":                 "prebuilt-layout",
	"ocr_api_version":           "2023-07-31",
	"ocr_poll_interval":         2 * time.Second,
	"ocr_max_polls":             60,
	"storage_connection_string": "",
	"storage_container":         "converted-cvs",
	"sas_expiry":                60 * time.Minute,
	"soffice_path":              "soffice",
	"account_managers":          "",
	"brand_name":                "Recruit Kit",
	"logo_path":                 "",
	"holiday_api_url":           DefaultHolidayAPIURL,
	"default_country":           "AU",
	"max_upload_bytes":          int64(20 << 20),
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		log.Println("Attempting to load from parent directory...")
		err = godotenv.Load("../../.env")
		if err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}

	cfg, err := Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

// Load reads configuration from the environment and, when cfgFile is set,
// from that file. Environment variables win over the file.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// UsesLocalOCR reports whether documents are analyzed in-process.
func (c *Config) UsesLocalOCR() bool {
	return c.OCRProvider == "local"
}

// ValidateOCR checks the OCR service settings. Local analysis needs none.
func (c *Config) ValidateOCR() error {
	if c.UsesLocalOCR() {
		return nil
	}
	if c.OCREndpoint == "" {
		return fmt.Errorf("%w: OCR_ENDPOINT is not set", ErrMissingCredentials)
	}
	if c.OCRKey == "" {
		return fmt.Errorf("%w: OCR_KEY is not set", ErrMissingCredentials)
	}
	return nil
}

func (c *Config) ValidateStorage() error {
	if c.StorageConnectionString == "" {
		return fmt.Errorf("%w: STORAGE_CONNECTION_STRING is not set", ErrMissingCredentials)
	}
	if c.StorageContainer == "" {
		return fmt.Errorf("%w: STORAGE_CONTAINER is not set", ErrMissingCredentials)
	}
	return nil
}
