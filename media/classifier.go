package media

import (
	"path/filepath"
	"strings"

	"photo-organiser/database"
)

// memeKeywords flag a filename as a meme when any of them appears in it
var memeKeywords = []string{"meme", "funny", "lol"}

// screenshotExtensions are the image types the screenshot heuristic applies to
var screenshotExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true,
}

// HeuristicClassifier classifies a photo from its file name and extension
// alone; no pixel inspection happens yet. It stays useful as a fallback even
// after a real content model lands.
type HeuristicClassifier struct{}

// NewHeuristicClassifier creates the filename-based classifier
func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{}
}

// Classify applies the heuristic rules in order, first match wins. It is a
// pure function of the file name, so identical paths always classify the same
// way.
func (c *HeuristicClassifier) Classify(filePath string) (Classification, error) {
	name := strings.ToLower(filepath.Base(filePath))
	ext := strings.ToLower(filepath.Ext(filePath))

	if screenshotExtensions[ext] && strings.Contains(name, "screenshot") {
		return Classification{
			Type:         database.ContentTypeScreenshot,
			IsScreenshot: true,
			HasText:      false,
			Confidence:   0.8,
			Text:         "",
		}, nil
	}

	for _, keyword := range memeKeywords {
		if strings.Contains(name, keyword) {
			return Classification{
				Type:         database.ContentTypeMeme,
				IsScreenshot: false,
				HasText:      true,
				Confidence:   0.7,
				Text:         "meme text placeholder",
			}, nil
		}
	}

	return Classification{
		Type:         database.ContentTypePhoto,
		IsScreenshot: false,
		HasText:      false,
		Confidence:   0.9,
		Text:         "",
	}, nil
}
