package errors

// ErrorBuilder provides a fluent API for creating ClassifiedError instances.
type ErrorBuilder struct {
	category ErrorCategory
	severity ErrorSeverity
	message  string
	cause    error
	context  ErrorContext
}

// NewError creates a new ErrorBuilder with the specified category and message.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		severity: SeverityError,
		message:  message,
		context:  make(ErrorContext),
	}
}

// WrapError creates a new ErrorBuilder that wraps an existing error.
func WrapError(err error, category ErrorCategory, message string) *ErrorBuilder {
	return NewError(category, message).WithCause(err)
}

// WithSeverity sets the error severity.
func (b *ErrorBuilder) WithSeverity(severity ErrorSeverity) *ErrorBuilder {
	b.severity = severity
	return b
}

// WithCause sets the wrapped error.
func (b *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	b.cause = err
	return b
}

// WithContext adds a context key-value pair.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.context = b.context.Set(key, value)
	return b
}

// WithContextMap adds multiple context values.
func (b *ErrorBuilder) WithContextMap(ctx ErrorContext) *ErrorBuilder {
	b.context = b.context.Merge(ctx)
	return b
}

// ForParameter records the option name the error refers to.
func (b *ErrorBuilder) ForParameter(name string) *ErrorBuilder {
	return b.WithContext(ContextParameter, name)
}

// Fatal sets the severity to fatal.
func (b *ErrorBuilder) Fatal() *ErrorBuilder {
	return b.WithSeverity(SeverityFatal)
}

// Warning sets the severity to warning.
func (b *ErrorBuilder) Warning() *ErrorBuilder {
	return b.WithSeverity(SeverityWarning)
}

// Build creates the final ClassifiedError.
func (b *ErrorBuilder) Build() *ClassifiedError {
	return &ClassifiedError{
		category: b.category,
		severity: b.severity,
		message:  b.message,
		cause:    b.cause,
		context:  b.context,
	}
}

// Convenience constructors for the pipeline error kinds

func MissingParameter(message string) *ErrorBuilder {
	return NewError(CategoryMissingParameter, message)
}

func InvalidInteger(message string) *ErrorBuilder {
	return NewError(CategoryInvalidInteger, message)
}

func InvalidFormat(message string) *ErrorBuilder {
	return NewError(CategoryInvalidFormat, message)
}

func OutOfRange(message string) *ErrorBuilder {
	return NewError(CategoryOutOfRange, message)
}

func FieldOutOfRange(message string) *ErrorBuilder {
	return NewError(CategoryFieldOutOfRange, message)
}

func NegativeRange(message string) *ErrorBuilder {
	return NewError(CategoryNegativeRange, message)
}

func InvalidTimezone(message string) *ErrorBuilder {
	return NewError(CategoryInvalidTimezone, message)
}

func InvalidLocale(message string) *ErrorBuilder {
	return NewError(CategoryInvalidLocale, message)
}

// UnsupportedCapability reports a pipeline collaborator that was not configured.
func UnsupportedCapability(message string) *ErrorBuilder {
	return NewError(CategoryUnsupportedCapability, message)
}

// ConfigError creates a configuration error.
func ConfigError(message string) *ErrorBuilder {
	return NewError(CategoryConfig, message).Fatal()
}

// ValidationError creates a validation error for malformed command input.
func ValidationError(message string) *ErrorBuilder {
	return NewError(CategoryValidation, message).Fatal()
}

// FileSystemError creates a filesystem error.
func FileSystemError(message string) *ErrorBuilder {
	return NewError(CategoryFileSystem, message).Fatal()
}

// InternalError creates an internal error.
func InternalError(message string) *ErrorBuilder {
	return NewError(CategoryInternal, message).Fatal()
}
