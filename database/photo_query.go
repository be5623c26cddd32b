package database

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Querier is satisfied by *sql.DB and *sql.Tx
type Querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// PhotoFilter holds the optional criteria for SearchPhotos. Nil/empty fields
// are not applied.
type PhotoFilter struct {
	Status       string
	ContentType  string
	HasFaces     *bool
	HasText      *bool
	IsScreenshot *bool
	Limit        uint64
	Offset       uint64
}

// PhotoSummary is the flat row shape returned by SearchPhotos
type PhotoSummary struct {
	ID               uint    `json:"id"`
	FilePath         string  `json:"file_path"`
	FileHash         string  `json:"file_hash"`
	Width            *int    `json:"width,omitempty"`
	Height           *int    `json:"height,omitempty"`
	FileSize         *int64  `json:"file_size,omitempty"`
	MimeType         *string `json:"mime_type,omitempty"`
	HasFaces         bool    `json:"has_faces"`
	FaceCount        int     `json:"face_count"`
	ContentType      string  `json:"content_type"`
	IsScreenshot     bool    `json:"is_screenshot"`
	ProcessingStatus string  `json:"processing_status"`
	ProcessedAt      *int64  `json:"processed_at,omitempty"`
}

// SearchPhotos runs a dynamically assembled query against the photos table.
// Results are ordered by file_path; callers wanting natural ordering re-sort
// the page themselves.
func SearchPhotos(db Querier, filter PhotoFilter) ([]PhotoSummary, error) {
	queryBuilder := psql.Select(
		"id", "file_path", "file_hash", "width", "height", "file_size",
		"mime_type", "has_faces", "face_count", "content_type",
		"is_screenshot", "processing_status", "processed_at",
	).From("photos").OrderBy("file_path ASC")

	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"processing_status": filter.Status})
	}
	if filter.ContentType != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"content_type": filter.ContentType})
	}
	if filter.HasFaces != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"has_faces": *filter.HasFaces})
	}
	if filter.HasText != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"has_text": *filter.HasText})
	}
	if filter.IsScreenshot != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_screenshot": *filter.IsScreenshot})
	}
	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		queryBuilder = queryBuilder.Offset(filter.Offset)
	}

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for SearchPhotos: %w", err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute photo search: %w", err)
	}
	defer rows.Close()

	photos := []PhotoSummary{}
	for rows.Next() {
		var p PhotoSummary
		err := rows.Scan(
			&p.ID, &p.FilePath, &p.FileHash, &p.Width, &p.Height, &p.FileSize,
			&p.MimeType, &p.HasFaces, &p.FaceCount, &p.ContentType,
			&p.IsScreenshot, &p.ProcessingStatus, &p.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo search row: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("photo search row iteration failed: %w", err)
	}

	return photos, nil
}

// CountPhotosByStatus returns how many photos carry the given processing status
func CountPhotosByStatus(db Querier, status string) (int64, error) {
	queryBuilder := psql.Select("COUNT(*)").From("photos").
		Where(sq.Eq{"processing_status": status})

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL query for CountPhotosByStatus: %w", err)
	}

	var count int64
	if err := db.QueryRow(sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count photos with status %s: %w", status, err)
	}
	return count, nil
}
