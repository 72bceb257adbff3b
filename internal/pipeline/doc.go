// Package pipeline implements the datetime transform: a fixed initialize → modify → finalize
// pipeline driven by named options.
//
// A call goes through two phases. Compile reads the option set once, in the documented
// priority order, and produces an ExecutionPlan made of explicit variants: one Initializer,
// an ordered list of Modifiers and one Finalizer. Execute then runs that plan against a
// time.Time and renders the output text.
//
// Initializers (first present wins):
//
//	from_timestamp, from_timestamp_millis, from_timestamp_micros, from_timestamp_nanos,
//	from_rfc2822, from_rfc3339, from_str + input_format, default: now (UTC)
//
// Modifiers (all optional, applied in this order):
//
//	with_timezone,
//	with_ordinal, with_ordinal0, with_year, with_month, with_month0, with_day, with_day0,
//	with_hour, with_minute, with_second, with_nanosecond,
//	add_months ... add_nanoseconds, sub_months ... sub_nanoseconds
//
// Finalizers (first present wins):
//
//	output_format (+ locale), to_rfc2822, to_timestamp, to_timestamp_millis,
//	to_timestamp_micros, to_timestamp_nanos, years_since, default: RFC 3339
//
// Named time zones and localized formatting are collaborators injected with WithZoneResolver
// and WithLocaleFormatter. Without them the corresponding options fail with an
// unsupported_capability error.
package pipeline
