package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBatchSize                = 32
	defaultProcessingTimeoutSeconds = 300
	defaultServePort                = 8080
)

// defaultAllowedExtensions is the extension allow-list used when
// ALLOWED_IMAGE_FORMATS is not set
var defaultAllowedExtensions = []string{".jpg", ".jpeg", ".png", ".heic", ".webp", ".tiff", ".bmp"}

type Config struct {
	// source directory (where photo files are scanned from)
	PhotoRootDir string

	// database path
	DatabasePath string

	// thumbnail output directory; empty disables thumbnail generation
	ThumbnailsPath string

	// case-insensitive file extension allow-list, each entry starting with "."
	AllowedExtensions []string

	// batch processing settings
	BatchSize         int
	ProcessingTimeout time.Duration // advisory, not enforced by the pipeline yet

	// HTTP API settings
	ServePort int
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

// parseExtensions splits a comma-separated extension list, lowercases each
// entry and ensures a leading dot. Empty entries are dropped.
func parseExtensions(raw string) []string {
	parts := strings.Split(raw, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, ".") {
			p = "." + p
		}
		exts = append(exts, p)
	}
	return exts
}

func LoadConfig() (Config, error) {
	root := getEnvOrDefault("PHOTO_ROOT_DIR", ".")
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for photo root '%s': %w", root, err)
	}

	dbPath := getEnvOrDefault("DATABASE_PATH", filepath.Join("data", "photo_organiser.db"))

	thumbsPath := os.Getenv("THUMBNAILS_PATH")
	if thumbsPath != "" {
		thumbsPath, err = filepath.Abs(thumbsPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to get absolute path for thumbnails dir '%s': %w", thumbsPath, err)
		}
	}

	exts := defaultAllowedExtensions
	if raw := os.Getenv("ALLOWED_IMAGE_FORMATS"); raw != "" {
		exts = parseExtensions(raw)
		if len(exts) == 0 {
			return Config{}, fmt.Errorf("ALLOWED_IMAGE_FORMATS '%s' contains no usable extensions", raw)
		}
	}

	batchSize := getEnvIntOrDefault("BATCH_SIZE", defaultBatchSize)
	timeoutSecs := getEnvIntOrDefault("PROCESSING_TIMEOUT_SECONDS", defaultProcessingTimeoutSeconds)
	servePort := getEnvIntOrDefault("SERVE_PORT", defaultServePort)

	cfg := Config{
		PhotoRootDir:      absRoot,
		DatabasePath:      dbPath,
		ThumbnailsPath:    thumbsPath,
		AllowedExtensions: exts,
		BatchSize:         batchSize,
		ProcessingTimeout: time.Duration(timeoutSecs) * time.Second,
		ServePort:         servePort,
	}

	return cfg, nil
}
