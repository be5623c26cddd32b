package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"photo-organiser/config"
	"photo-organiser/database"
)

var rootCmd = &cobra.Command{
	Use:   "photo-organiser",
	Short: "A CLI tool for organising a personal photo library",
	Long: `Photo Organiser scans directories for image files, records their
metadata in a local database and runs them through the ingestion
pipeline (hashing, metadata extraction, face detection and content
classification).`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

// openDatabase loads configuration, ensures the storage directories exist and
// opens the database. Shared by every command that touches the store.
func openDatabase() (*gorm.DB, config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	dirs := []string{filepath.Dir(cfg.DatabasePath)}
	if cfg.ThumbnailsPath != "" {
		dirs = append(dirs, cfg.ThumbnailsPath)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, config.Config{}, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}

	db, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to initialize database: %w", err)
	}

	return db, cfg, nil
}
