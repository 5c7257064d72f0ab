package srapi

import "fmt"

// NetworkError reports a transport-level failure: the upstream was
// unreachable, the request timed out, or it answered with an
// unexpected status.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response that could not be decoded or that was
// missing required fields.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
