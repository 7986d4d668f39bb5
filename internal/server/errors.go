// Package server provides the HTTP API for résumé role matching.
package server

import (
	"fmt"
	"net/http"
)

// Client-facing error messages.
const (
	msgNoFile      = "No file uploaded"
	msgUnsupported = "Unsupported file type or empty file"
	msgTooLarge    = "File too large"
	msgInternal    = "Analysis failed due to internal error."
)

// ErrNoFile indicates the request carried no "resume" file part.
type ErrNoFile struct{}

func (e *ErrNoFile) Error() string {
	return "no resume file in request"
}

// ErrUnsupportedFile indicates a wrong extension or a file with no extractable text.
type ErrUnsupportedFile struct {
	Filename string
	Reason   string
}

func (e *ErrUnsupportedFile) Error() string {
	return fmt.Sprintf("unsupported file %q: %s", e.Filename, e.Reason)
}

// ErrFileTooLarge indicates the upload exceeded the configured size cap.
type ErrFileTooLarge struct {
	Limit int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("upload exceeds %d bytes", e.Limit)
}

// InternalError wraps an unexpected failure during analysis. Its detail is
// logged but never sent to the client.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Cause)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrNoFile, *ErrUnsupportedFile:
		return http.StatusBadRequest
	case *ErrFileTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message shown to API callers for an error.
func ClientMessage(err error) string {
	switch err.(type) {
	case *ErrNoFile:
		return msgNoFile
	case *ErrUnsupportedFile:
		return msgUnsupported
	case *ErrFileTooLarge:
		return msgTooLarge
	default:
		return msgInternal
	}
}
