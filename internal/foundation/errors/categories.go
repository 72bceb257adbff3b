package errors

import "maps"

// ErrorCategory represents the kind of an error for classification and routing.
type ErrorCategory string

const (
	// CategoryMissingParameter marks a conditionally required option that was not supplied.
	CategoryMissingParameter ErrorCategory = "missing_parameter"
	CategoryInvalidInteger   ErrorCategory = "invalid_integer"
	CategoryInvalidFormat    ErrorCategory = "invalid_format"

	// CategoryOutOfRange marks values outside the representable instant or duration range.
	CategoryOutOfRange      ErrorCategory = "out_of_range"
	CategoryFieldOutOfRange ErrorCategory = "field_out_of_range"
	CategoryNegativeRange   ErrorCategory = "negative_range"

	CategoryInvalidTimezone       ErrorCategory = "invalid_timezone"
	CategoryInvalidLocale         ErrorCategory = "invalid_locale"
	CategoryUnsupportedCapability ErrorCategory = "unsupported_capability"

	// CategoryConfig represents configuration file and environment errors.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ContextParameter is the context key holding the option name an error refers to.
const ContextParameter = "parameter"

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution completely
	SeverityError   ErrorSeverity = "error"   // Fails the current operation
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	value, exists := c[key]
	return value, exists
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	if value, exists := c.Get(key); exists {
		if str, ok := value.(string); ok {
			return str, true
		}
	}
	return "", false
}

// Merge combines two contexts, with other taking precedence.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}
	result := make(ErrorContext)
	maps.Copy(result, c)
	maps.Copy(result, other)
	return result
}
