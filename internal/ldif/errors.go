package ldif

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrorCategory represents different categories of fixture errors.
type ErrorCategory string

const (
	ErrorCategoryFileAccess ErrorCategory = "file_access"
	ErrorCategoryValidation ErrorCategory = "validation"
	ErrorCategoryUnknown    ErrorCategory = "unknown"
)

// FixtureError provides enhanced error information for LDIF fixture writes.
type FixtureError struct {
	Operation string        // The operation that failed
	Category  ErrorCategory // Error category
	Path      string        // File involved in the operation (if applicable)
	DN        string        // DN involved in the operation (if applicable)
	Message   string        // Human-readable message
	Cause     error         // Underlying error
}

func (e *FixtureError) Error() string {
	parts := []string{fmt.Sprintf("LDIF %s failed", e.Operation)}

	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	if e.Cause != nil && e.Cause.Error() != e.Message {
		parts = append(parts, e.Cause.Error())
	}

	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path: %s", e.Path))
	}

	if e.DN != "" {
		parts = append(parts, fmt.Sprintf("DN: %s", e.DN))
	}

	return strings.Join(parts, " - ")
}

func (e *FixtureError) Unwrap() error {
	return e.Cause
}

// GetCategory returns the error category.
func (e *FixtureError) GetCategory() ErrorCategory {
	return e.Category
}

// NewFileAccessError wraps a file system error raised while reading or writing path.
func NewFileAccessError(operation, path string, err error) *FixtureError {
	if err == nil {
		return nil
	}

	fixtureErr := &FixtureError{
		Operation: operation,
		Category:  ErrorCategoryFileAccess,
		Path:      path,
		Cause:     err,
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		fixtureErr.Message = "file or directory does not exist"
	case errors.Is(err, fs.ErrPermission):
		fixtureErr.Message = "permission denied"
	}

	return fixtureErr
}

// NewValidationError reports an input the serializer cannot represent.
func NewValidationError(operation, dn, message string) *FixtureError {
	return &FixtureError{
		Operation: operation,
		Category:  ErrorCategoryValidation,
		DN:        dn,
		Message:   message,
	}
}

// WrapError wraps an error with operation context.
func WrapError(operation string, err error) error {
	if err == nil {
		return nil
	}

	var fixtureErr *FixtureError
	if errors.As(err, &fixtureErr) {
		if fixtureErr.Operation == "" {
			fixtureErr.Operation = operation
		}
		return err
	}

	return &FixtureError{
		Operation: operation,
		Category:  ErrorCategoryUnknown,
		Cause:     err,
	}
}

// GetErrorCategory returns the category of an error.
func GetErrorCategory(err error) ErrorCategory {
	var fixtureErr *FixtureError
	if errors.As(err, &fixtureErr) {
		return fixtureErr.GetCategory()
	}

	return ErrorCategoryUnknown
}

// IsFileAccessError checks if an error indicates an unreadable or unwritable path.
func IsFileAccessError(err error) bool {
	return GetErrorCategory(err) == ErrorCategoryFileAccess
}

// IsValidationError checks if an error indicates input the serializer rejected.
func IsValidationError(err error) bool {
	return GetErrorCategory(err) == ErrorCategoryValidation
}
