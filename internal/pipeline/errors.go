package pipeline

import "errors"

// Domain-specific errors for the pipeline package.
var (
	ErrEmptyQuery = errors.New("query is empty")
)
