package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"photo-organiser/database"
	"photo-organiser/repository"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database status and processing statistics",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	db, cfg, err := openDatabase()
	if err != nil {
		return err
	}

	if err := database.CheckConnection(db); err != nil {
		return err
	}

	log.Println("=== Database Status ===")
	log.Println("Connection: OK")
	log.Printf("Database: %s", cfg.DatabasePath)

	stats, err := repository.NewPhotoRepository(db).Stats()
	if err != nil {
		return err
	}

	log.Printf("Total photos:     %d", stats.TotalPhotos)
	log.Printf("Processed:        %d", stats.ProcessedPhotos)
	log.Printf("Failed:           %d", stats.FailedPhotos)
	log.Printf("Pending:          %d", stats.PendingPhotos)
	log.Printf("With faces:       %d", stats.PhotosWithFaces)
	log.Printf("Completion rate:  %.1f%%", stats.CompletionRate)
	for contentType, count := range stats.ContentTypeDistribution {
		log.Printf("  %-14s %d", contentType+":", count)
	}

	return nil
}
