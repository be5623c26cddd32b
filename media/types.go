package media

// BoundingBox is a face region in pixel coordinates. All fields are
// non-negative; width and height are extents, not corner coordinates.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Detection is one detected face in an image
type Detection struct {
	Bbox       BoundingBox `json:"bbox"`
	Confidence float64     `json:"confidence"`

	// EmbeddingID references an entry in the external embedding index; the
	// relational store does not own it
	EmbeddingID string `json:"embedding_id"`
}

// Classification is the result of content classification for one file
type Classification struct {
	Type         string  `json:"type"`
	IsScreenshot bool    `json:"is_screenshot"`
	HasText      bool    `json:"has_text"`
	Confidence   float64 `json:"confidence"`
	Text         string  `json:"text"`
}

// FaceDetector finds face regions in an image file
type FaceDetector interface {
	DetectFaces(filePath string) ([]Detection, error)
}

// ContentClassifier assigns a content type to an image file
type ContentClassifier interface {
	Classify(filePath string) (Classification, error)
}
