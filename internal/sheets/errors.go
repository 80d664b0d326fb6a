package sheets

import (
	"errors"
	"fmt"
)

// Kind classifies an upstream failure.
type Kind string

const (
	// KindForbidden means the API rejected the request (HTTP 403), usually
	// because the spreadsheet is not shared for API access.
	KindForbidden Kind = "forbidden"
	// KindNotFound means the spreadsheet ID or range does not resolve
	// (HTTP 404).
	KindNotFound Kind = "not_found"
	// KindTransient covers transport errors and any other non-2xx status.
	// Callers may retry; the client itself never does.
	KindTransient Kind = "transient"
)

// UpstreamError is a classified failure from the Sheets API.
type UpstreamError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

// ConfigError reports a missing credential. It is never retried and is
// distinct from upstream failures: the request never left the process.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Missing)
}

// IsConfigError checks whether err is a configuration failure.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// AsUpstreamError extracts a classified upstream failure from err.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
