package cmd

import (
	"fmt"
	"log"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"photo-organiser/media"
	"photo-organiser/pipeline"
	"photo-organiser/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Scan a directory for photos and process them",
	Long: `Scan a directory for supported image files and run each one through
the ingestion pipeline. Photos already processed successfully are
skipped; failed or interrupted photos are retried.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().Bool("recursive", false, "Scan subdirectories recursively")
	scanCmd.Flags().Bool("progress", true, "Show a progress bar while processing")
}

func runScan(cmd *cobra.Command, args []string) error {
	recursive, _ := cmd.Flags().GetBool("recursive")
	showProgress, _ := cmd.Flags().GetBool("progress")

	db, cfg, err := openDatabase()
	if err != nil {
		return err
	}

	scanResult, err := scanner.Scan(args[0], recursive, cfg.AllowedExtensions)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if scanResult.PhotoCount == 0 {
		log.Println("No photo files found!")
		return nil
	}
	log.Printf("Found %d photo files", scanResult.PhotoCount)

	processor := pipeline.NewProcessor(db, cfg, media.NewStubFaceDetector(), media.NewHeuristicClassifier())

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(scanResult.PhotoCount,
			progressbar.OptionSetDescription("Processing photos"),
			progressbar.OptionShowCount(),
		)
		processor.OnResult = func(pipeline.PhotoResult) {
			_ = bar.Add(1)
		}
	}

	result := processor.ProcessBatch(scanResult.Photos)
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	log.Printf("Batch %s finished: total=%d processed=%d failed=%d skipped=%d in %dms",
		result.BatchID, result.Total, result.Processed, result.Failed, result.Skipped, result.ProcessingTimeMS)

	for _, photo := range result.Photos {
		if photo.Status == "failed" {
			log.Printf("  failed: %s (%s)", photo.FilePath, photo.Error)
		}
	}

	return nil
}
