package domain

// UpdateStatus is the outcome of updating one package file.
type UpdateStatus string

const (
	// UpdateStatusUpdated indicates the package file or its lock document was rewritten.
	UpdateStatusUpdated UpdateStatus = "updated"
	// UpdateStatusUnchanged indicates no newer release applied and nothing was written.
	UpdateStatusUnchanged UpdateStatus = "unchanged"
	// UpdateStatusFailed indicates a rewrite, lookup or lock regeneration failed.
	UpdateStatusFailed UpdateStatus = "failed"
	// UpdateStatusSkipped indicates the package file declared no dependencies.
	UpdateStatusSkipped UpdateStatus = "skipped"
)

// IsChange reports whether the status means files were written.
func (s UpdateStatus) IsChange() bool {
	return s == UpdateStatusUpdated
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
