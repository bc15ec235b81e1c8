package gnews

import (
	"errors"
	"fmt"
)

// ErrNoArticles is returned when the API succeeds but matches nothing.
var ErrNoArticles = errors.New("gnews: no articles in response")

// UpstreamError means the API responded with a non-success status.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gnews: upstream error %d: %s", e.Code, e.Message)
}

// NetworkError means the call failed at the transport level, or the
// response body could not be parsed.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("gnews: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
