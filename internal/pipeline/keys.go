package pipeline

// Initializer option keys in priority order.
const (
	KeyFromTimestamp       = "from_timestamp"
	KeyFromTimestampMillis = "from_timestamp_millis"
	KeyFromTimestampMicros = "from_timestamp_micros"
	KeyFromTimestampNanos  = "from_timestamp_nanos"
	KeyFromRFC2822         = "from_rfc2822"
	KeyFromRFC3339         = "from_rfc3339"
	KeyFromStr             = "from_str"
	KeyInputFormat         = "input_format"
)

// Modifier option keys.
const (
	KeyWithTimezone   = "with_timezone"
	KeyWithOrdinal    = "with_ordinal"
	KeyWithOrdinal0   = "with_ordinal0"
	KeyWithYear       = "with_year"
	KeyWithMonth      = "with_month"
	KeyWithMonth0     = "with_month0"
	KeyWithDay        = "with_day"
	KeyWithDay0       = "with_day0"
	KeyWithHour       = "with_hour"
	KeyWithMinute     = "with_minute"
	KeyWithSecond     = "with_second"
	KeyWithNanosecond = "with_nanosecond"
)

// Finalizer option keys in priority order.
const (
	KeyOutputFormat      = "output_format"
	KeyLocale            = "locale"
	KeyToRFC2822         = "to_rfc2822"
	KeyToTimestamp       = "to_timestamp"
	KeyToTimestampMillis = "to_timestamp_millis"
	KeyToTimestampMicros = "to_timestamp_micros"
	KeyToTimestampNanos  = "to_timestamp_nanos"
	KeyYearsSince        = "years_since"
)

// Stage groups option keys by the pipeline stage that reads them.
type Stage struct {
	Name string
	Keys []string
}

// Stages lists every recognized option key by stage, in evaluation order.
func Stages() []Stage {
	modifiers := []string{
		KeyWithTimezone,
		KeyWithOrdinal, KeyWithOrdinal0, KeyWithYear, KeyWithMonth, KeyWithMonth0,
		KeyWithDay, KeyWithDay0, KeyWithHour, KeyWithMinute, KeyWithSecond, KeyWithNanosecond,
	}
	for _, u := range shiftUnits {
		modifiers = append(modifiers, "add_"+u.name)
	}
	for _, u := range shiftUnits {
		modifiers = append(modifiers, "sub_"+u.name)
	}

	return []Stage{
		{Name: "initializer", Keys: []string{
			KeyFromTimestamp, KeyFromTimestampMillis, KeyFromTimestampMicros, KeyFromTimestampNanos,
			KeyFromRFC2822, KeyFromRFC3339, KeyFromStr, KeyInputFormat,
		}},
		{Name: "modifier", Keys: modifiers},
		{Name: "finalizer", Keys: []string{
			KeyOutputFormat, KeyLocale, KeyToRFC2822, KeyToTimestamp, KeyToTimestampMillis,
			KeyToTimestampMicros, KeyToTimestampNanos, KeyYearsSince,
		}},
	}
}
