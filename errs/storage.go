package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Object storage errors
var (
	ErrUploadFailed = errors.New("object upload failed")
	ErrRemoveFailed = errors.New("object removal failed")
)

// NewUploadError wraps a failure to upload one object. An upload error aborts
// the submission that triggered it; objects uploaded earlier in the same
// submission stay behind until the reconciler sweeps them.
func NewUploadError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Failed to upload object %s", key),
		Cause:      cause,
	}
}

// NewRemoveError wraps a failure to remove one object. Removal is best-effort
// everywhere it happens, so callers log this rather than surface it.
func NewRemoveError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrRemoveFailed,
		Details:    fmt.Sprintf("Failed to remove object %s", key),
		Cause:      cause,
	}
}
