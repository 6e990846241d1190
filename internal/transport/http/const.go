package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxLogLength is the fallback limit, in bytes, for request/response dumps.
	DefaultMaxLogLength uint64 = 1000 * 1000
)
