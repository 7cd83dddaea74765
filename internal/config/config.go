// Package config loads application configuration from environment
// variables, with working defaults for every value.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App AppConfig
	OCR OCRConfig
}

// AppConfig holds the batch run's input/output locations and log level.
type AppConfig struct {
	InputDir   string
	OutputFile string
	LogLevel   string
}

// OCRConfig holds OCR-related configuration.
type OCRConfig struct {
	Language string
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() *Config {
	viper.SetDefault("CHRONOTEXT_INPUT_DIR", "images")
	viper.SetDefault("CHRONOTEXT_OUTPUT_FILE", filepath.Join("clio-out", "extracted_text.txt"))
	viper.SetDefault("CHRONOTEXT_OCR_LANGUAGE", "eng")
	viper.SetDefault("CHRONOTEXT_LOG_LEVEL", "info")

	viper.AutomaticEnv()

	return &Config{
		App: AppConfig{
			InputDir:   viper.GetString("CHRONOTEXT_INPUT_DIR"),
			OutputFile: viper.GetString("CHRONOTEXT_OUTPUT_FILE"),
			LogLevel:   viper.GetString("CHRONOTEXT_LOG_LEVEL"),
		},
		OCR: OCRConfig{
			Language: viper.GetString("CHRONOTEXT_OCR_LANGUAGE"),
		},
	}
}
