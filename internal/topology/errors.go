package topology

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory represents different categories of topology errors.
type ErrorCategory string

const (
	ErrorCategoryInvalidRole   ErrorCategory = "invalid_role"
	ErrorCategoryResolution    ErrorCategory = "resolution"
	ErrorCategoryConfiguration ErrorCategory = "configuration"
	ErrorCategoryUnknown       ErrorCategory = "unknown"
)

// ErrNoChangelogServer is returned when a replication-server role is required
// but the server has no changelog server attached.
var ErrNoChangelogServer = errors.New("no changelog server attached")

// TopologyError provides structured error information for topology operations.
type TopologyError struct {
	Operation string        // The operation that failed
	Category  ErrorCategory // Error category
	Host      string        // Hostname involved (if applicable)
	Dir       string        // Server installation directory (if applicable)
	Message   string        // Human-readable message
	Cause     error         // Underlying error
}

func (e *TopologyError) Error() string {
	parts := []string{fmt.Sprintf("topology %s failed", e.Operation)}

	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	if e.Cause != nil && e.Cause.Error() != e.Message {
		parts = append(parts, e.Cause.Error())
	}

	if e.Host != "" {
		parts = append(parts, fmt.Sprintf("host: %s", e.Host))
	}

	if e.Dir != "" {
		parts = append(parts, fmt.Sprintf("dir: %s", e.Dir))
	}

	return strings.Join(parts, " - ")
}

func (e *TopologyError) Unwrap() error {
	return e.Cause
}

// GetCategory returns the error category.
func (e *TopologyError) GetCategory() ErrorCategory {
	return e.Category
}

func newInvalidRoleError(operation string, s *Server) *TopologyError {
	return &TopologyError{
		Operation: operation,
		Category:  ErrorCategoryInvalidRole,
		Host:      s.hostname,
		Dir:       s.dir,
		Message:   "server does not hold the replication-server role",
		Cause:     ErrNoChangelogServer,
	}
}

func newResolutionError(hostname string, err error) *TopologyError {
	return &TopologyError{
		Operation: "resolve_host",
		Category:  ErrorCategoryResolution,
		Host:      hostname,
		Cause:     err,
	}
}

func newConfigurationError(operation, message string, err error) *TopologyError {
	return &TopologyError{
		Operation: operation,
		Category:  ErrorCategoryConfiguration,
		Message:   message,
		Cause:     err,
	}
}

// GetErrorCategory returns the category of an error.
func GetErrorCategory(err error) ErrorCategory {
	var topoErr *TopologyError
	if errors.As(err, &topoErr) {
		return topoErr.GetCategory()
	}

	return ErrorCategoryUnknown
}

// IsInvalidRoleError checks if an error indicates an operation on a server
// lacking the required role.
func IsInvalidRoleError(err error) bool {
	return GetErrorCategory(err) == ErrorCategoryInvalidRole
}

// IsResolutionError checks if an error indicates a hostname resolution failure.
func IsResolutionError(err error) bool {
	return GetErrorCategory(err) == ErrorCategoryResolution
}

// IsConfigurationError checks if an error indicates an invalid topology description.
func IsConfigurationError(err error) bool {
	return GetErrorCategory(err) == ErrorCategoryConfiguration
}
