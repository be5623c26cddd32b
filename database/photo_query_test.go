package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"photo-organiser/models"
)

func newQueryTestDB(t *testing.T) (*gorm.DB, *sql.DB) {
	t.Helper()
	gdb, err := InitGormDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrateModels(gdb))
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	return gdb, sqlDB
}

func seedPhotos(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	photos := []models.Photo{
		{FilePath: "a/one.jpg", FileHash: "h1", ProcessingStatus: StatusCompleted,
			ContentType: ContentTypePhoto, HasFaces: true, FaceCount: 2},
		{FilePath: "a/two.png", FileHash: "h2", ProcessingStatus: StatusCompleted,
			ContentType: ContentTypeScreenshot, IsScreenshot: true, HasText: true},
		{FilePath: "b/three.jpg", FileHash: "h3", ProcessingStatus: StatusFailed,
			ContentType: ContentTypeUnknown},
		{FilePath: "b/four.jpg", FileHash: "h4", ProcessingStatus: StatusPending,
			ContentType: ContentTypeUnknown},
	}
	for i := range photos {
		require.NoError(t, gdb.Create(&photos[i]).Error)
	}
}

func TestSearchPhotos_NoFilterReturnsAllOrdered(t *testing.T) {
	gdb, sqlDB := newQueryTestDB(t)
	seedPhotos(t, gdb)

	results, err := SearchPhotos(sqlDB, PhotoFilter{})
	require.NoError(t, err)
	require.Len(t, results, 4)

	paths := make([]string, len(results))
	for i, r := range results {
		paths[i] = r.FilePath
	}
	assert.Equal(t, []string{"a/one.jpg", "a/two.png", "b/four.jpg", "b/three.jpg"}, paths)
}

func TestSearchPhotos_StatusFilter(t *testing.T) {
	gdb, sqlDB := newQueryTestDB(t)
	seedPhotos(t, gdb)

	results, err := SearchPhotos(sqlDB, PhotoFilter{Status: StatusCompleted})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, StatusCompleted, r.ProcessingStatus)
	}
}

func TestSearchPhotos_CombinedFilters(t *testing.T) {
	gdb, sqlDB := newQueryTestDB(t)
	seedPhotos(t, gdb)

	isScreenshot := true
	results, err := SearchPhotos(sqlDB, PhotoFilter{
		Status:       StatusCompleted,
		ContentType:  ContentTypeScreenshot,
		IsScreenshot: &isScreenshot,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a/two.png", results[0].FilePath)
}

func TestSearchPhotos_HasFacesFilter(t *testing.T) {
	gdb, sqlDB := newQueryTestDB(t)
	seedPhotos(t, gdb)

	hasFaces := false
	results, err := SearchPhotos(sqlDB, PhotoFilter{HasFaces: &hasFaces})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.False(t, r.HasFaces)
	}
}

func TestSearchPhotos_LimitOffsetPaging(t *testing.T) {
	gdb, sqlDB := newQueryTestDB(t)
	seedPhotos(t, gdb)

	page1, err := SearchPhotos(sqlDB, PhotoFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "a/one.jpg", page1[0].FilePath)

	page2, err := SearchPhotos(sqlDB, PhotoFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, "b/four.jpg", page2[0].FilePath)
}

func TestSearchPhotos_NoMatchReturnsEmptySlice(t *testing.T) {
	gdb, sqlDB := newQueryTestDB(t)
	seedPhotos(t, gdb)

	results, err := SearchPhotos(sqlDB, PhotoFilter{ContentType: ContentTypeMeme})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestCountPhotosByStatus(t *testing.T) {
	gdb, sqlDB := newQueryTestDB(t)
	seedPhotos(t, gdb)

	completed, err := CountPhotosByStatus(sqlDB, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(2), completed)

	skipped, err := CountPhotosByStatus(sqlDB, StatusSkipped)
	require.NoError(t, err)
	assert.Equal(t, int64(0), skipped)
}
