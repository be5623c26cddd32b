package pipeline

import (
	"errors"
	"log"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"photo-organiser/config"
	"photo-organiser/database"
	"photo-organiser/media"
	"photo-organiser/models"
	"photo-organiser/repository"
)

// OperationBatchProcessing names the ingestion operation in processing logs
const OperationBatchProcessing = "batch_processing"

// SkipReasonAlreadyProcessed marks the idempotence short-circuit
const SkipReasonAlreadyProcessed = "already_processed"

const thumbnailMaxSize = 300

// PhotoResult is the terminal outcome for one photo in a batch
type PhotoResult struct {
	FilePath         string `json:"file_path"`
	Status           string `json:"status"`
	Reason           string `json:"reason,omitempty"`
	PhotoID          uint   `json:"photo_id,omitempty"`
	FaceCount        int    `json:"face_count"`
	ContentType      string `json:"content_type,omitempty"`
	Error            string `json:"error,omitempty"`
	ProcessingTimeMS int64  `json:"processing_time_ms"`
}

// Processor runs the per-photo ingestion pipeline: existence check, hashing,
// metadata extraction, detection and classification, persistence and audit
// logging. Collaborators are injected so tests can swap them.
type Processor struct {
	DB         *gorm.DB
	Cfg        config.Config
	Detector   media.FaceDetector
	Classifier media.ContentClassifier

	// OnResult, when set, is invoked after each photo finishes. Used for
	// progress reporting by the CLI.
	OnResult func(PhotoResult)
}

// NewProcessor wires a pipeline over the given database handle
func NewProcessor(db *gorm.DB, cfg config.Config, detector media.FaceDetector, classifier media.ContentClassifier) *Processor {
	return &Processor{
		DB:         db,
		Cfg:        cfg,
		Detector:   detector,
		Classifier: classifier,
	}
}

// txRepos bundles the repositories scoped to one batch transaction
type txRepos struct {
	photos *repository.PhotoRepository
	faces  *repository.FaceRepository
	logs   *repository.ProcessingLogRepository
}

// processSinglePhoto drives one photo through the ingestion state machine.
// Every failure is converted to a failed PhotoResult here; nothing escapes to
// the batch loop except via panic, which the batch recovers.
func (p *Processor) processSinglePhoto(path string, repos txRepos) PhotoResult {
	start := time.Now()
	cleanPath := filepath.ToSlash(path)

	var photo *models.Photo

	existing, err := repos.photos.GetByPath(cleanPath)
	switch {
	case err == nil:
		if existing.ProcessingStatus == database.StatusCompleted {
			// idempotence guard: a completed photo is never reprocessed
			return PhotoResult{
				FilePath:         cleanPath,
				Status:           database.StatusSkipped,
				Reason:           SkipReasonAlreadyProcessed,
				ProcessingTimeMS: 0,
			}
		}
		// retry path for pending/processing/failed rows
		photo = existing
		photo.ProcessingStatus = database.StatusProcessing
		if err := repos.photos.Update(photo); err != nil {
			return p.failPhoto(photo, cleanPath, start, repos, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, hashErr := media.FileSHA256(cleanPath)
		if hashErr != nil {
			return p.failPhoto(nil, cleanPath, start, repos, hashErr)
		}
		photo = &models.Photo{
			FilePath:         cleanPath,
			FileHash:         hash,
			ProcessingStatus: database.StatusProcessing,
		}
		// persist immediately so the row has a stable identifier
		if err := repos.photos.Create(photo); err != nil {
			return p.failPhoto(nil, cleanPath, start, repos, err)
		}
	default:
		return p.failPhoto(nil, cleanPath, start, repos, err)
	}

	// metadata extraction is best-effort; only a stat/open failure is fatal
	meta, err := media.ExtractMetadata(cleanPath)
	if err != nil {
		return p.failPhoto(photo, cleanPath, start, repos, err)
	}
	photo.Width = meta.Width
	photo.Height = meta.Height
	photo.FileSize = &meta.FileSize
	photo.ModifiedDate = &meta.ModTime
	photo.MimeType = meta.MimeType
	photo.CreatedDate = meta.TakenAt

	detections, err := p.Detector.DetectFaces(cleanPath)
	if err != nil {
		return p.failPhoto(photo, cleanPath, start, repos, err)
	}
	photo.HasFaces = len(detections) > 0
	photo.FaceCount = len(detections)

	faces := make([]models.Face, len(detections))
	for i, det := range detections {
		faces[i] = models.Face{
			PhotoID:     photo.ID,
			EmbeddingID: det.EmbeddingID,
			BboxX:       det.Bbox.X,
			BboxY:       det.Bbox.Y,
			BboxWidth:   det.Bbox.Width,
			BboxHeight:  det.Bbox.Height,
			Confidence:  det.Confidence,
			// PersonID stays nil; assignment happens during clustering later
		}
	}
	// delete-then-reinsert so retries cannot accumulate stale face rows
	if err := repos.faces.ReplaceForPhoto(photo.ID, faces); err != nil {
		return p.failPhoto(photo, cleanPath, start, repos, err)
	}

	classification, err := p.Classifier.Classify(cleanPath)
	if err != nil {
		return p.failPhoto(photo, cleanPath, start, repos, err)
	}
	photo.ContentType = classification.Type
	photo.IsScreenshot = classification.IsScreenshot
	photo.HasText = classification.HasText
	if classification.Text != "" {
		photo.TextContent = &classification.Text
	}

	// thumbnails are a best-effort extra; a failure here never fails the photo
	if p.Cfg.ThumbnailsPath != "" && photo.Width != nil {
		thumbPath, thumbErr := media.GenerateThumbnail(cleanPath, p.Cfg.ThumbnailsPath, thumbnailMaxSize)
		if thumbErr != nil {
			log.Printf("pipeline: thumbnail generation failed for %s: %v", cleanPath, thumbErr)
		} else {
			photo.ThumbnailPath = &thumbPath
		}
	}

	photo.ProcessingStatus = database.StatusCompleted
	now := time.Now().Unix()
	photo.ProcessedAt = &now
	if err := repos.photos.Update(photo); err != nil {
		return p.failPhoto(photo, cleanPath, start, repos, err)
	}

	elapsed := time.Since(start).Milliseconds()
	p.logSuccess(repos, photo, elapsed)

	return PhotoResult{
		FilePath:         cleanPath,
		Status:           database.StatusCompleted,
		PhotoID:          photo.ID,
		FaceCount:        photo.FaceCount,
		ContentType:      photo.ContentType,
		ProcessingTimeMS: elapsed,
	}
}

// failPhoto converts an error into a failed result, marking the photo row
// failed when one exists and appending a failure audit record
func (p *Processor) failPhoto(photo *models.Photo, cleanPath string, start time.Time, repos txRepos, cause error) PhotoResult {
	log.Printf("pipeline: failed to process photo %s: %v", cleanPath, cause)

	var photoID *uint
	if photo != nil && photo.ID != 0 {
		photoID = &photo.ID
		if err := repos.photos.SetStatus(photo.ID, database.StatusFailed); err != nil {
			log.Printf("pipeline: failed to mark photo %s failed: %v", cleanPath, err)
		}
	}
	p.logFailure(repos, photoID, cause)

	result := PhotoResult{
		FilePath:         cleanPath,
		Status:           database.StatusFailed,
		Error:            cause.Error(),
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	}
	if photoID != nil {
		result.PhotoID = *photoID
	}
	return result
}

func (p *Processor) logSuccess(repos txRepos, photo *models.Photo, elapsedMS int64) {
	entry := &models.ProcessingLog{
		PhotoID:          &photo.ID,
		Operation:        OperationBatchProcessing,
		Status:           database.LogStatusSuccess,
		ProcessingTimeMS: &elapsedMS,
	}
	if err := repos.logs.Create(entry); err != nil {
		log.Printf("pipeline: failed to write success log for photo ID %d: %v", photo.ID, err)
	}
}

func (p *Processor) logFailure(repos txRepos, photoID *uint, cause error) {
	msg := cause.Error()
	entry := &models.ProcessingLog{
		PhotoID:      photoID,
		Operation:    OperationBatchProcessing,
		Status:       database.LogStatusFailed,
		ErrorMessage: &msg,
	}
	if err := repos.logs.Create(entry); err != nil {
		log.Printf("pipeline: failed to write failure log: %v", err)
	}
}
