package planning

import (
	"errors"
	"fmt"
)

var errEmptyGrid = errors.New("no data in spreadsheet/range")

// ConfigurationError is returned for missing or invalid configuration, including
// a run date that falls outside the configured planning window. Not retryable.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%v)", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Configurationf wraps a formatted error as a ConfigurationError.
func Configurationf(format string, args ...any) error {
	return &ConfigurationError{Err: fmt.Errorf(format, args...)}
}

// AuthenticationError is returned when the credential material is missing,
// unreadable or expired. Hint carries a remediation suggestion for the user.
type AuthenticationError struct {
	Err  error
	Hint string
}

func (e *AuthenticationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("authentication error (%v) - %s", e.Err, e.Hint)
	}

	return fmt.Sprintf("authentication error (%v)", e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// SourceUnavailableError is returned when the source range cannot be read or
// contains no data. The run is safe to retry later.
type SourceUnavailableError struct {
	Spreadsheet string
	Range       string
	Err         error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("unable to read %s from spreadsheet %s (%v)", e.Range, e.Spreadsheet, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// TargetWriteError is returned when the write to the target spreadsheet is
// rejected. The target range is left in its prior state and the run is safe to
// retry later.
type TargetWriteError struct {
	Spreadsheet string
	Range       string
	Err         error
}

func (e *TargetWriteError) Error() string {
	return fmt.Sprintf("unable to write %s to spreadsheet %s (%v)", e.Range, e.Spreadsheet, e.Err)
}

func (e *TargetWriteError) Unwrap() error {
	return e.Err
}
