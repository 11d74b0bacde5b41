// Package events defines the event names and error codes emitted by the
// viewer. They are opaque string identifiers with no behavior of their own.
package events

// Viewer event names.
const (
	Download         = "download"
	Reload           = "reload"
	Load             = "load"
	ProgressStart    = "progressstart"
	ProgressEnd      = "progressend"
	NotificationShow = "notificationshow"
	NotificationHide = "notificationhide"
	MediaEndAutoplay = "mediaendautoplay"
	Error            = "error"
	ViewerEvent      = "viewerevent"
)

// Error codes attached to error events.
const (
	CodeAnnotationsLoad     = "error_annotations_load"
	CodeInvalidFileForCache = "error_invalid_file_for_cache"
	CodePrefetchFileID      = "error_prefetch_file_id"
	CodeRateLimit           = "error_rate_limit"
	CodeRetriesExceeded     = "error_retries_exceeded"
)
