package nws

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDataFailure is wrapped by DataFailureError.
var ErrDataFailure = errors.New("data failure")

// DataFailureError reports a response whose status did not match the status
// expected for the call, or a lookup that found no record.
type DataFailureError struct {
	URL    string
	Status int
	Body   string
}

func (e *DataFailureError) Error() string {
	return fmt.Sprintf("%s: %s returned status %d: %s", ErrDataFailure, e.URL, e.Status, e.Body)
}

func (e *DataFailureError) Unwrap() error { return ErrDataFailure }

// IsNotFound reports whether err is a DataFailureError with status 404.
func IsNotFound(err error) bool {
	var dfe *DataFailureError
	return errors.As(err, &dfe) && dfe.Status == http.StatusNotFound
}

// notFound builds the error returned when a search expected exactly one
// result and the service returned none.
func notFound(url, message string) error {
	return &DataFailureError{URL: url, Status: http.StatusNotFound, Body: message}
}
