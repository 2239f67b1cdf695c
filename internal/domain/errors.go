package domain

import "errors"

var (
	// ErrProductNotFound is returned when a SKU lookup finds no record in the
	// downstream product database
	ErrProductNotFound = errors.New("product not found in database")

	// ErrDatabaseFailure is returned when a downstream database request fails
	// (transport error, unexpected status, or malformed body)
	ErrDatabaseFailure = errors.New("product database request failed")

	// ErrExtractionFailed is returned when the vision model is unreachable or
	// returned output that could not be used
	ErrExtractionFailed = errors.New("product extraction failed")

	// ErrInvalidUpload is returned when the uploaded file is not an image
	ErrInvalidUpload = errors.New("uploaded file is not an image")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
