package cloudinary

import "errors"

var (
	// ErrInvalidRequest is returned when the upload parameters are rejected
	ErrInvalidRequest = errors.New("invalid upload request")

	// ErrUploadFailed is returned when the upload could not be completed
	ErrUploadFailed = errors.New("upload failed")

	// ErrNetworkError is returned when there's a network communication error
	ErrNetworkError = errors.New("network error")

	// ErrUnauthorized is returned when the preset or account is rejected
	ErrUnauthorized = errors.New("unauthorized: invalid cloud name or preset")
)
