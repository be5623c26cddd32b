package database

// Photo processing status values. Transitions are
// pending -> processing -> {completed|failed}; skipped is only ever a
// per-attempt result, never stored on the photo row.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusSkipped    = "skipped"
)

// ProcessingLog status values; log rows are append-only.
const (
	LogStatusSuccess = "success"
	LogStatusFailed  = "failed"
)

// Content classification types.
const (
	ContentTypePhoto       = "photo"
	ContentTypeMeme        = "meme"
	ContentTypeScreenshot  = "screenshot"
	ContentTypeTextMessage = "text_message"
	ContentTypeDocument    = "document"
	ContentTypeUnknown     = "unknown"
)
