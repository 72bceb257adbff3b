package errors

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "config.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "config.yaml" {
			t.Errorf("expected context file=config.yaml, got %v", file)
		}
	})

	t.Run("Error detection through wrapping", func(t *testing.T) {
		err := fmt.Errorf("template: body:1:3: error calling datetime: %w",
			InvalidTimezone("Failed to parse IANA timezone").ForParameter("with_timezone").Build())

		if !IsClassified(err) {
			t.Error("expected wrapped error to be classified")
		}
		if !HasCategory(err, CategoryInvalidTimezone) {
			t.Error("expected error to have invalid_timezone category")
		}
		if GetCategory(err) != CategoryInvalidTimezone {
			t.Errorf("expected category %s, got %s", CategoryInvalidTimezone, GetCategory(err))
		}
		classified, _ := AsClassified(err)
		if classified.Parameter() != "with_timezone" {
			t.Errorf("expected parameter with_timezone, got %q", classified.Parameter())
		}
	})

	t.Run("Error string", func(t *testing.T) {
		_, parseErr := strconv.ParseInt("x", 10, 64)
		err := InvalidInteger("Invalid seconds timestamp").WithCause(parseErr).Build()

		want := `[invalid_integer] Invalid seconds timestamp: strconv.ParseInt: parsing "x": invalid syntax`
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Error("expected error to wrap strconv.ErrSyntax")
		}
	})

	t.Run("Unclassified defaults", func(t *testing.T) {
		err := errors.New("plain")
		if GetCategory(err) != CategoryInternal {
			t.Errorf("expected internal category, got %s", GetCategory(err))
		}
		if GetSeverity(err) != SeverityError {
			t.Errorf("expected error severity, got %s", GetSeverity(err))
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := WrapError(originalErr, CategoryOutOfRange, "Hours parameter out of range").
			Warning().
			ForParameter("add_hours").
			WithContext("value", 42).
			Build()

		if err.Category() != CategoryOutOfRange {
			t.Errorf("expected category %s, got %s", CategoryOutOfRange, err.Category())
		}
		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}
		if err.Parameter() != "add_hours" {
			t.Errorf("expected parameter add_hours, got %s", err.Parameter())
		}
		if v, _ := err.Context().Get("value"); v != 42 {
			t.Errorf("expected value context 42, got %v", v)
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
		}{
			{"MissingParameter", MissingParameter("test"), CategoryMissingParameter, SeverityError},
			{"InvalidInteger", InvalidInteger("test"), CategoryInvalidInteger, SeverityError},
			{"InvalidFormat", InvalidFormat("test"), CategoryInvalidFormat, SeverityError},
			{"OutOfRange", OutOfRange("test"), CategoryOutOfRange, SeverityError},
			{"FieldOutOfRange", FieldOutOfRange("test"), CategoryFieldOutOfRange, SeverityError},
			{"NegativeRange", NegativeRange("test"), CategoryNegativeRange, SeverityError},
			{"InvalidTimezone", InvalidTimezone("test"), CategoryInvalidTimezone, SeverityError},
			{"InvalidLocale", InvalidLocale("test"), CategoryInvalidLocale, SeverityError},
			{"UnsupportedCapability", UnsupportedCapability("test"), CategoryUnsupportedCapability, SeverityError},
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityFatal},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityFatal},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
			})
		}
	})
}

func TestErrorContext(t *testing.T) {
	t.Run("Context operations", func(t *testing.T) {
		ctx := make(ErrorContext)
		ctx = ctx.Set("key1", "value1")
		ctx = ctx.Set("key2", 42)

		value1, exists1 := ctx.GetString("key1")
		if !exists1 || value1 != "value1" {
			t.Errorf("expected key1=value1, got %v", value1)
		}

		value2, exists2 := ctx.Get("key2")
		if !exists2 || value2 != 42 {
			t.Errorf("expected key2=42, got %v", value2)
		}

		_, exists3 := ctx.Get("nonexistent")
		if exists3 {
			t.Error("expected nonexistent key to not exist")
		}
	})

	t.Run("Context merge", func(t *testing.T) {
		ctx1 := ErrorContext{"key1": "value1", "shared": "original"}
		ctx2 := ErrorContext{"key2": "value2", "shared": "overridden"}

		merged := ctx1.Merge(ctx2)

		shared, _ := merged.GetString("shared")
		if shared != "overridden" {
			t.Errorf("expected shared=overridden, got %s", shared)
		}
		if len(merged) != 3 {
			t.Errorf("expected 3 keys, got %d", len(merged))
		}
	})

	t.Run("WithContext does not mutate original", func(t *testing.T) {
		base := OutOfRange("x").Build()
		derived := base.WithContext(ContextParameter, "add_days")

		if base.Parameter() != "" {
			t.Errorf("expected original error without parameter, got %q", base.Parameter())
		}
		if derived.Parameter() != "add_days" {
			t.Errorf("expected derived parameter add_days, got %q", derived.Parameter())
		}
	})
}
