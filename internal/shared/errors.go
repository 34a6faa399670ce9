package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Dataset loading errors
	ErrFetchFailed = fmt.Errorf("dataset fetch failed")
	ErrBadStatus   = fmt.Errorf("unexpected response status")
	ErrParseFailed = fmt.Errorf("dataset parse failed")

	// Storage errors
	ErrNotFound = fmt.Errorf("not found")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
