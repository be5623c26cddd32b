package media

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"

	// register decoders so image.DecodeConfig can sniff dimensions
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Metadata holds what could be extracted from a photo file. Extraction is
// best-effort: an undecodable file still yields size and mtime.
type Metadata struct {
	Width    *int
	Height   *int
	FileSize int64
	ModTime  int64   // file modification time, Unix timestamp
	MimeType *string // lowercase format name, e.g. "jpeg", "png"
	TakenAt  *int64  // EXIF capture timestamp, Unix
}

// codecUnavailableExtensions are formats that need an optional codec this
// build does not carry. Failing to decode these is expected, not corruption.
var codecUnavailableExtensions = map[string]bool{
	".heic": true, ".heif": true,
}

// ExtractMetadata reads dimensions, format, size and capture time for a photo.
// A decode failure is not an error: the returned Metadata then carries file
// size and mtime only. The only fatal failure is not being able to stat or
// open the file at all.
func ExtractMetadata(filePath string) (*Metadata, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("metadata: failed to stat file %s: %w", filePath, err)
	}

	meta := &Metadata{
		FileSize: stat.Size(),
		ModTime:  stat.ModTime().Unix(),
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("metadata: failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		ext := strings.ToLower(filepath.Ext(filePath))
		if codecUnavailableExtensions[ext] {
			log.Printf("metadata: %s decode not available for %s (%v); continuing with file size only", ext, filePath, err)
		} else {
			log.Printf("metadata: unsupported or corrupt image %s (%v); continuing with file size only", filePath, err)
		}
		return meta, nil
	}

	w, h := config.Width, config.Height
	meta.Width = &w
	meta.Height = &h
	mime := strings.ToLower(format)
	meta.MimeType = &mime

	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("metadata: failed to seek file %s: %w", filePath, err)
	}

	exifData, err := exif.Decode(file)
	if err != nil {
		// not necessarily a problem, the file might just lack EXIF data
		return meta, nil
	}
	if dt, err := exifData.DateTime(); err == nil {
		ts := dt.Unix()
		meta.TakenAt = &ts
	}

	return meta, nil
}
