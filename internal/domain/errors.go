package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError reports a required field missing from a record or
// an edit form. Writes carrying a ValidationError are never attempted.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// BackendError carries a remote CRUD or storage failure. The message
// is the backend's own text, surfaced verbatim to admin callers.
type BackendError struct {
	Message string
}

func (e BackendError) Error() string {
	if e.Message == "" {
		return "backend error"
	}
	return e.Message
}

func (e BackendError) Is(target error) bool {
	_, ok := target.(BackendError)
	if ok {
		return true
	}
	_, ok = target.(*BackendError)
	return ok
}

// UploadError is a storage-specific backend failure.
type UploadError struct {
	Message string
}

func (e UploadError) Error() string {
	return fmt.Sprintf("upload failed: %s", e.Message)
}

func (e UploadError) Is(target error) bool {
	_, ok := target.(UploadError)
	if ok {
		return true
	}
	_, ok = target.(*UploadError)
	return ok
}

// ErrBackendNotConfigured is returned by the mock backend for every
// mutating operation. Reads degrade to empty results instead.
var ErrBackendNotConfigured = BackendError{Message: "backend not configured"}
