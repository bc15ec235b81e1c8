package openweather

import "fmt"

// UpstreamError means the API responded but reported a non-success status
// in its body.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openweather: upstream error %d: %s", e.Code, e.Message)
}

// NetworkError means the call failed at the transport level, or the
// response body could not be parsed.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("openweather: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
