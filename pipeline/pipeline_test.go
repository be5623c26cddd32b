package pipeline

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"photo-organiser/config"
	"photo-organiser/database"
	"photo-organiser/media"
	"photo-organiser/models"
	"photo-organiser/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitGormDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(db))
	return db
}

func newTestProcessor(t *testing.T, db *gorm.DB) *Processor {
	t.Helper()
	cfg := config.Config{BatchSize: 32}
	return NewProcessor(db, cfg, media.NewStubFaceDetector(), media.NewHeuristicClassifier())
}

func writeTestJPEG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 24))
	for x := 0; x < 32; x++ {
		for y := 0; y < 24; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 10), B: 64, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 85}))
}

func TestProcessBatch_EndToEnd(t *testing.T) {
	db := newTestDB(t)
	p := newTestProcessor(t, db)

	path := filepath.Join(t.TempDir(), "photo.jpg")
	writeTestJPEG(t, path)

	result := p.ProcessBatch([]string{path})

	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Photos, 1)

	photoResult := result.Photos[0]
	assert.Equal(t, database.StatusCompleted, photoResult.Status)
	assert.Equal(t, 0, photoResult.FaceCount)
	assert.Equal(t, database.ContentTypePhoto, photoResult.ContentType)
	assert.NotZero(t, photoResult.PhotoID)

	photo, err := repository.NewPhotoRepository(db).GetByID(photoResult.PhotoID)
	require.NoError(t, err)
	assert.Equal(t, database.StatusCompleted, photo.ProcessingStatus)
	assert.False(t, photo.HasFaces)
	assert.Equal(t, 0, photo.FaceCount)
	assert.Equal(t, database.ContentTypePhoto, photo.ContentType)
	assert.NotEmpty(t, photo.FileHash)
	require.NotNil(t, photo.Width)
	assert.Equal(t, 32, *photo.Width)
	require.NotNil(t, photo.MimeType)
	assert.Equal(t, "jpeg", *photo.MimeType)
	assert.NotNil(t, photo.ProcessedAt)

	logs, err := repository.NewProcessingLogRepository(db).ListByPhotoID(photo.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, OperationBatchProcessing, logs[0].Operation)
	assert.Equal(t, database.LogStatusSuccess, logs[0].Status)
	require.NotNil(t, logs[0].ProcessingTimeMS)
}

func TestProcessBatch_Idempotence(t *testing.T) {
	db := newTestDB(t)
	p := newTestProcessor(t, db)

	path := filepath.Join(t.TempDir(), "photo.jpg")
	writeTestJPEG(t, path)

	first := p.ProcessBatch([]string{path})
	require.Equal(t, 1, first.Processed)

	second := p.ProcessBatch([]string{path})
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 1, second.Skipped)
	require.Len(t, second.Photos, 1)
	assert.Equal(t, database.StatusSkipped, second.Photos[0].Status)
	assert.Equal(t, SkipReasonAlreadyProcessed, second.Photos[0].Reason)
	assert.Zero(t, second.Photos[0].ProcessingTimeMS)

	var count int64
	require.NoError(t, db.Model(&models.Photo{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProcessBatch_PartialFailureIsolation(t *testing.T) {
	db := newTestDB(t)
	p := newTestProcessor(t, db)

	dir := t.TempDir()
	good1 := filepath.Join(dir, "a.jpg")
	good2 := filepath.Join(dir, "b.jpg")
	writeTestJPEG(t, good1)
	writeTestJPEG(t, good2)
	missing := filepath.Join(dir, "does-not-exist.jpg")

	result := p.ProcessBatch([]string{good1, missing, good2})

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Skipped)

	byPath := map[string]PhotoResult{}
	for _, pr := range result.Photos {
		byPath[pr.FilePath] = pr
	}
	assert.Equal(t, database.StatusCompleted, byPath[filepath.ToSlash(good1)].Status)
	assert.Equal(t, database.StatusCompleted, byPath[filepath.ToSlash(good2)].Status)
	failedResult := byPath[filepath.ToSlash(missing)]
	assert.Equal(t, database.StatusFailed, failedResult.Status)
	assert.NotEmpty(t, failedResult.Error)

	// the failure predates any photo row, so the audit entry has no photo_id
	var failLogs []models.ProcessingLog
	require.NoError(t, db.Where("status = ?", database.LogStatusFailed).Find(&failLogs).Error)
	require.Len(t, failLogs, 1)
	assert.Nil(t, failLogs[0].PhotoID)
}

func TestProcessBatch_AggregateInvariant(t *testing.T) {
	db := newTestDB(t)
	p := newTestProcessor(t, db)

	dir := t.TempDir()
	good := filepath.Join(dir, "good.jpg")
	writeTestJPEG(t, good)

	// first pass makes good.jpg completed so the second pass skips it
	p.ProcessBatch([]string{good})

	missing := filepath.Join(dir, "missing.jpg")
	fresh := filepath.Join(dir, "fresh.jpg")
	writeTestJPEG(t, fresh)

	result := p.ProcessBatch([]string{good, missing, fresh})
	assert.Equal(t, result.Total, result.Processed+result.Failed+result.Skipped)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Skipped)
}

func TestProcessBatch_RetryAfterFailurePurgesStaleFaces(t *testing.T) {
	db := newTestDB(t)
	p := newTestProcessor(t, db)

	path := filepath.Join(t.TempDir(), "retry.jpg")
	writeTestJPEG(t, path)

	// simulate an earlier attempt that failed after staging a face row
	photoRepo := repository.NewPhotoRepository(db)
	photo := &models.Photo{
		FilePath:         filepath.ToSlash(path),
		FileHash:         "stale",
		ProcessingStatus: database.StatusFailed,
	}
	require.NoError(t, photoRepo.Create(photo))
	require.NoError(t, repository.NewFaceRepository(db).Create(&models.Face{
		PhotoID: photo.ID, EmbeddingID: "stale-face",
		BboxWidth: 5, BboxHeight: 5, Confidence: 0.3,
	}))

	result := p.ProcessBatch([]string{path})
	require.Equal(t, 1, result.Processed)

	got, err := photoRepo.GetByID(photo.ID)
	require.NoError(t, err)
	assert.Equal(t, database.StatusCompleted, got.ProcessingStatus)

	faces, err := repository.NewFaceRepository(db).ListByPhotoID(photo.ID)
	require.NoError(t, err)
	assert.Empty(t, faces, "stale faces from the failed attempt must be purged")
}

func TestProcessBatch_UndecodableFileStillCompletes(t *testing.T) {
	db := newTestDB(t)
	p := newTestProcessor(t, db)

	path := filepath.Join(t.TempDir(), "corrupt.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	result := p.ProcessBatch([]string{path})
	require.Equal(t, 1, result.Processed)

	photo, err := repository.NewPhotoRepository(db).GetByID(result.Photos[0].PhotoID)
	require.NoError(t, err)
	assert.Equal(t, database.StatusCompleted, photo.ProcessingStatus)
	assert.Nil(t, photo.Width)
	require.NotNil(t, photo.FileSize)
	assert.Greater(t, *photo.FileSize, int64(0))
}

func TestProcessBatch_EmptyList(t *testing.T) {
	db := newTestDB(t)
	p := newTestProcessor(t, db)

	result := p.ProcessBatch(nil)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, result.Total, result.Processed+result.Failed+result.Skipped)
	assert.Empty(t, result.Photos)
}

func TestProcessBatch_OnResultHook(t *testing.T) {
	db := newTestDB(t)
	p := newTestProcessor(t, db)

	dir := t.TempDir()
	good := filepath.Join(dir, "hooked.jpg")
	writeTestJPEG(t, good)

	var seen []string
	p.OnResult = func(pr PhotoResult) {
		seen = append(seen, pr.Status)
	}

	p.ProcessBatch([]string{good, filepath.Join(dir, "gone.jpg")})
	assert.Equal(t, []string{database.StatusCompleted, database.StatusFailed}, seen)
}

func TestProcessBatch_ThumbnailGeneration(t *testing.T) {
	db := newTestDB(t)
	thumbDir := t.TempDir()
	cfg := config.Config{BatchSize: 32, ThumbnailsPath: thumbDir}
	p := NewProcessor(db, cfg, media.NewStubFaceDetector(), media.NewHeuristicClassifier())

	path := filepath.Join(t.TempDir(), "thumbed.jpg")
	writeTestJPEG(t, path)

	result := p.ProcessBatch([]string{path})
	require.Equal(t, 1, result.Processed)

	photo, err := repository.NewPhotoRepository(db).GetByID(result.Photos[0].PhotoID)
	require.NoError(t, err)
	require.NotNil(t, photo.ThumbnailPath)
	_, err = os.Stat(*photo.ThumbnailPath)
	assert.NoError(t, err)
}
