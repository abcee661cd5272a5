package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Template validation errors
	ErrDuplicateID        ErrorCode = "TEMPLATE_DUPLICATE_ID"
	ErrNotCloned          ErrorCode = "TEMPLATE_NOT_CLONED"
	ErrNotFoundLocally    ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrInvalidPathPrefix  ErrorCode = "TEMPLATE_PATH_PREFIX"
	ErrMissingMarkerFile  ErrorCode = "TEMPLATE_NO_MARKER"
	ErrUnreadableMarker   ErrorCode = "TEMPLATE_MARKER_READ"
	ErrMissingPlaceholder ErrorCode = "TEMPLATE_PLACEHOLDER"

	// Instantiation errors
	ErrNoTemplates       ErrorCode = "NO_TEMPLATES"
	ErrUnknownTemplate   ErrorCode = "TEMPLATE_UNKNOWN"
	ErrDestinationExists ErrorCode = "DESTINATION_EXISTS"
	ErrCopyFailed        ErrorCode = "COPY_FAILED"
	ErrSubstitutionWrite ErrorCode = "SUBSTITUTION_WRITE"

	// Git errors
	ErrGitExecute ErrorCode = "GIT_EXECUTE"
	ErrGitClone   ErrorCode = "GIT_CLONE"
	ErrGitPull    ErrorCode = "GIT_PULL"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrDirRemove  ErrorCode = "DIR_REMOVE"
)

// VitexError is a coded error. Message is shown to the user and may carry
// "HINT:" lines; Details hold machine readable context such as the
// template id or path.
type VitexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VitexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VitexError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a VitexError with the same code, so that
// errors.Is(err, &VitexError{Code: c}) matches anywhere in a chain
func (e *VitexError) Is(target error) bool {
	var targetErr *VitexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a VitexError
func New(code ErrorCode, message string) *VitexError {
	return &VitexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a VitexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VitexError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err. A nil err gives nil.
func Wrap(err error, code ErrorCode, message string) *VitexError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a formatted message. A nil err gives nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VitexError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail sets a detail and returns e
func (e *VitexError) WithDetail(key string, value interface{}) *VitexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether the outermost VitexError in err has code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// HasErrorCode reports whether any VitexError in err's chain has code
func HasErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &VitexError{Code: code})
}

// GetErrorCode returns the code of the outermost VitexError, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var vitexErr *VitexError
	if errors.As(err, &vitexErr) {
		return vitexErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails merges the details of every VitexError in err's chain,
// outer values winning. It returns nil when there is no VitexError.
func GetErrorDetails(err error) map[string]interface{} {
	var details map[string]interface{}
	for err != nil {
		if vitexErr, ok := err.(*VitexError); ok {
			if details == nil {
				details = make(map[string]interface{})
			}
			for k, v := range vitexErr.Details {
				if _, set := details[k]; !set {
					details[k] = v
				}
			}
		}
		err = errors.Unwrap(err)
	}
	return details
}
