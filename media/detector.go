package media

import "log"

// StubFaceDetector is the placeholder detection backend. It returns zero
// faces for every input; no model is loaded. The real detector will slot in
// behind the FaceDetector interface once an embedding pipeline exists.
type StubFaceDetector struct{}

// NewStubFaceDetector creates the no-op detector
func NewStubFaceDetector() *StubFaceDetector {
	return &StubFaceDetector{}
}

// DetectFaces always returns an empty detection list
func (d *StubFaceDetector) DetectFaces(filePath string) ([]Detection, error) {
	log.Printf("detector: face detection placeholder for %s", filePath)
	return []Detection{}, nil
}
