package services

import "errors"

// Extraction pipeline failure taxonomy. A single failed attempt ends
// the request; nothing retries.
var (
	// ErrBackendUnavailable covers transport failures, non-success
	// statuses and malformed response envelopes from the model API.
	ErrBackendUnavailable = errors.New("extraction backend unavailable")

	// ErrUnparseable means the model reply contained no decodable JSON
	// object.
	ErrUnparseable = errors.New("no parseable result in model reply")
)
