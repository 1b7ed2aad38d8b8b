// internal/core/errors.go
package core

import "errors"

// Define custom errors for better error handling and classification
var (
	ErrRecordType   = errors.New("unsupported DNS record type")
	ErrOutputFormat = errors.New("unsupported output format")
	ErrFileWrite    = errors.New("failed to write to file")
)
