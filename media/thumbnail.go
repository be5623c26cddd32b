package media

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	ThumbnailJpegQuality   = 90
	ThumbnailFileExtension = ".jpg"
)

// GenerateThumbnail creates a JPEG thumbnail whose longest side matches
// maxSize and writes it under thumbDir with a random name. Returns the
// absolute path of the saved thumbnail.
func GenerateThumbnail(srcPath, thumbDir string, maxSize int) (string, error) {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to open image for thumbnail %s: %w", srcPath, err)
	}

	bounds := img.Bounds()
	origWidth := bounds.Dx()
	origHeight := bounds.Dy()
	if origWidth <= 0 || origHeight <= 0 {
		return "", fmt.Errorf("invalid image dimensions for %s: %dx%d", srcPath, origWidth, origHeight)
	}

	newWidth, newHeight := origWidth, origHeight
	if origWidth > origHeight {
		if origWidth > maxSize {
			newWidth = maxSize
			newHeight = int(math.Round(float64(origHeight) * (float64(maxSize) / float64(origWidth))))
		}
	} else {
		if origHeight > maxSize {
			newHeight = maxSize
			newWidth = int(math.Round(float64(origWidth) * (float64(maxSize) / float64(origHeight))))
		}
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	thumb := imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)

	thumbUUID, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID for thumbnail: %w", err)
	}
	targetPath := filepath.Join(thumbDir, thumbUUID.String()+ThumbnailFileExtension)

	err = imaging.Save(thumb, targetPath, imaging.JPEGQuality(ThumbnailJpegQuality))
	if err != nil {
		return "", fmt.Errorf("failed to save thumbnail for %s: %w", srcPath, err)
	}

	return targetPath, nil
}
