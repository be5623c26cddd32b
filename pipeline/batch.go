package pipeline

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"photo-organiser/database"
	"photo-organiser/repository"
)

// BatchResult aggregates one batch run. The counters always satisfy
// Total == Processed + Failed + Skipped.
type BatchResult struct {
	BatchID          string        `json:"batch_id"`
	Total            int           `json:"total"`
	Processed        int           `json:"processed"`
	Failed           int           `json:"failed"`
	Skipped          int           `json:"skipped"`
	Photos           []PhotoResult `json:"photos"`
	ProcessingTimeMS int64         `json:"processing_time_ms"`
}

// ProcessBatch runs the ingestion pipeline over the given paths sequentially
// inside one database transaction. Per-photo failures are isolated: they are
// counted and logged but never abort the remaining photos. The transaction
// commits once at the end; a commit failure rolls back the whole batch's
// staged rows.
func (p *Processor) ProcessBatch(paths []string) BatchResult {
	start := time.Now()
	result := BatchResult{
		BatchID: uuid.NewString(),
		Total:   len(paths),
		Photos:  []PhotoResult{},
	}

	log.Printf("pipeline: starting batch %s of %d photos", result.BatchID, len(paths))

	tx := p.DB.Begin()
	if tx.Error != nil {
		log.Printf("pipeline: failed to begin batch transaction: %v", tx.Error)
		for _, path := range paths {
			result.Failed++
			result.Photos = append(result.Photos, PhotoResult{
				FilePath: path,
				Status:   database.StatusFailed,
				Error:    fmt.Sprintf("failed to begin batch transaction: %v", tx.Error),
			})
		}
		result.ProcessingTimeMS = time.Since(start).Milliseconds()
		return result
	}
	// release the session no matter how the batch ends; committed work is
	// unaffected, anything else is discarded
	defer tx.Rollback()

	repos := txRepos{
		photos: repository.NewPhotoRepository(tx),
		faces:  repository.NewFaceRepository(tx),
		logs:   repository.NewProcessingLogRepository(tx),
	}

	for _, path := range paths {
		photoResult := p.runGuarded(path, repos)
		result.Photos = append(result.Photos, photoResult)

		switch photoResult.Status {
		case database.StatusCompleted:
			result.Processed++
		case database.StatusFailed:
			result.Failed++
		default:
			result.Skipped++
		}

		if p.OnResult != nil {
			p.OnResult(photoResult)
		}
	}

	if err := tx.Commit().Error; err != nil {
		// all staged rows are lost; in-memory results above still report
		// their pre-commit outcome
		log.Printf("pipeline: failed to commit batch %s, rolling back: %v", result.BatchID, err)
	}

	result.ProcessingTimeMS = time.Since(start).Milliseconds()

	log.Printf("pipeline: batch %s completed: %d/%d photos in %dms (%d failed, %d skipped)",
		result.BatchID, result.Processed, result.Total, result.ProcessingTimeMS, result.Failed, result.Skipped)

	return result
}

// runGuarded is the second line of defense: a panic escaping the per-photo
// handler is recovered here, counted as a failure and logged, so one buggy
// photo cannot take down its siblings.
func (p *Processor) runGuarded(path string, repos txRepos) (result PhotoResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while processing %s: %v", path, r)
			log.Printf("pipeline: %v", err)
			p.logFailure(repos, nil, err)
			result = PhotoResult{
				FilePath:         path,
				Status:           database.StatusFailed,
				Error:            err.Error(),
				ProcessingTimeMS: time.Since(start).Milliseconds(),
			}
		}
	}()

	return p.processSinglePhoto(path, repos)
}
