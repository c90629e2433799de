package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream matches every *FetchError.
	ErrUpstream = errors.New("upstream unavailable")

	// ErrShape matches every *ShapeError.
	ErrShape = errors.New("unexpected upstream shape")
)

// Reason classifies why an upstream fetch produced no usable data.
type Reason string

const (
	ReasonTransport Reason = "transport" // connection refused, DNS, TLS, reset
	ReasonTimeout   Reason = "timeout"
	ReasonStatus    Reason = "status" // any non-2xx, redirects included
	ReasonDecode    Reason = "decode" // body is not a single JSON object
	ReasonEmpty     Reason = "empty"  // body is null or {}
)

// FetchError is the failure result of a Fetcher.
type FetchError struct {
	Reason     Reason
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch %s: %s: status %d", e.URL, e.Reason, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Reason, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrUpstream }

// ReasonOf returns the Reason carried by err, or "" if err is not a FetchError.
func ReasonOf(err error) Reason {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ""
}

// ShapeError reports a required field that is missing or has the wrong type.
// Path uses dotted notation with indexes, e.g. "properties.periods[2].name".
type ShapeError struct {
	Path    string
	Problem string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected upstream shape: %s: %s", e.Path, e.Problem)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }
