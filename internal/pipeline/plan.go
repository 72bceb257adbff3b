package pipeline

import (
	"strconv"
	"strings"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

// TimestampUnit is the resolution of an integer timestamp.
type TimestampUnit int

const (
	Seconds TimestampUnit = iota
	Millis
	Micros
	Nanos
)

// Initializer selects the source of the starting instant.
type Initializer interface {
	Key() string
}

// FromTimestamp starts from an integer count of Unit since the Unix epoch.
type FromTimestamp struct {
	Unit  TimestampUnit
	Value int64
}

// FromRFC2822 starts from an RFC 2822 date-time.
type FromRFC2822 struct{ Text string }

// FromRFC3339 starts from an RFC 3339 date-time.
type FromRFC3339 struct{ Text string }

// FromString starts from Text parsed with a strftime Format.
type FromString struct {
	Text   string
	Format string
}

// FromNow starts from the pipeline clock.
type FromNow struct{}

func (i FromTimestamp) Key() string {
	return [...]string{KeyFromTimestamp, KeyFromTimestampMillis, KeyFromTimestampMicros, KeyFromTimestampNanos}[i.Unit]
}
func (FromRFC2822) Key() string { return KeyFromRFC2822 }
func (FromRFC3339) Key() string { return KeyFromRFC3339 }
func (FromString) Key() string  { return KeyFromStr }
func (FromNow) Key() string     { return "now" }

// Modifier changes the running instant.
type Modifier interface {
	Key() string
}

// WithTimezone changes the display offset without moving the instant.
type WithTimezone struct{ Value string }

// SetField replaces one calendar or clock field.
type SetField struct {
	Field Field
	Value int64
}

// Shift adds or subtracts a quantity of Unit. Amount holds the signed magnitude of fixed
// units; Count holds the unsigned magnitude of calendar units (months, days).
type Shift struct {
	Unit     ShiftUnit
	Subtract bool
	Amount   int64
	Count    uint64
}

func (WithTimezone) Key() string { return KeyWithTimezone }
func (m SetField) Key() string   { return fieldSpecs[m.Field].key }
func (m Shift) Key() string {
	if m.Subtract {
		return "sub_" + shiftUnits[m.Unit].name
	}
	return "add_" + shiftUnits[m.Unit].name
}

// Finalizer selects the output encoding.
type Finalizer interface {
	Key() string
}

// FormatOutput renders with a strftime Pattern. Localized reports whether a locale option was
// present, even an empty one.
type FormatOutput struct {
	Pattern   string
	Locale    string
	Localized bool
}

// RFC2822Output renders an RFC 2822 date-time.
type RFC2822Output struct{}

// TimestampOutput renders an integer count of Unit since the Unix epoch.
type TimestampOutput struct{ Unit TimestampUnit }

// YearsSince renders the whole calendar years elapsed since the RFC 3339 Base.
type YearsSince struct{ Base string }

// RFC3339Output renders an RFC 3339 date-time.
type RFC3339Output struct{}

func (FormatOutput) Key() string  { return KeyOutputFormat }
func (RFC2822Output) Key() string { return KeyToRFC2822 }
func (f TimestampOutput) Key() string {
	return [...]string{KeyToTimestamp, KeyToTimestampMillis, KeyToTimestampMicros, KeyToTimestampNanos}[f.Unit]
}
func (YearsSince) Key() string    { return KeyYearsSince }
func (RFC3339Output) Key() string { return "to_rfc3339" }

// ExecutionPlan is the compiled form of an option set.
type ExecutionPlan struct {
	Initializer Initializer
	Modifiers   []Modifier
	Finalizer   Finalizer

	// Ignored lists present initializer and finalizer options that lost to a
	// higher-priority option.
	Ignored []string
}

// Compile reads the option set into an ExecutionPlan. Integer options are parsed here;
// calendar validity and text formats are checked when the plan is executed.
func Compile(p Params) (*ExecutionPlan, error) {
	plan := &ExecutionPlan{}

	init, err := compileInitializer(p, plan)
	if err != nil {
		return nil, err
	}
	plan.Initializer = init

	if plan.Modifiers, err = compileModifiers(p); err != nil {
		return nil, err
	}

	plan.Finalizer = compileFinalizer(p, plan)
	return plan, nil
}

func compileInitializer(p Params, plan *ExecutionPlan) (Initializer, error) {
	var chosen Initializer
	timestamps := []struct {
		key   string
		unit  TimestampUnit
		label string
	}{
		{KeyFromTimestamp, Seconds, "Invalid seconds timestamp"},
		{KeyFromTimestampMillis, Millis, "Invalid milli-seconds timestamp"},
		{KeyFromTimestampMicros, Micros, "Invalid micro-seconds timestamp"},
		{KeyFromTimestampNanos, Nanos, "Invalid nano-seconds timestamp"},
	}
	for _, ts := range timestamps {
		raw, ok := p.Lookup(ts.key)
		if !ok {
			continue
		}
		if chosen != nil {
			plan.Ignored = append(plan.Ignored, ts.key)
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, ferrors.InvalidInteger(ts.label).ForParameter(ts.key).WithCause(err).Build()
		}
		chosen = FromTimestamp{Unit: ts.unit, Value: v}
	}

	for _, key := range []string{KeyFromRFC2822, KeyFromRFC3339} {
		text, ok := p.Lookup(key)
		if !ok {
			continue
		}
		if chosen != nil {
			plan.Ignored = append(plan.Ignored, key)
			continue
		}
		if key == KeyFromRFC2822 {
			chosen = FromRFC2822{Text: text}
		} else {
			chosen = FromRFC3339{Text: text}
		}
	}

	text, hasStr := p.Lookup(KeyFromStr)
	format, hasFormat := p.Lookup(KeyInputFormat)
	switch {
	case hasStr && chosen != nil:
		plan.Ignored = append(plan.Ignored, KeyFromStr)
		if hasFormat {
			plan.Ignored = append(plan.Ignored, KeyInputFormat)
		}
	case hasStr && !hasFormat:
		return nil, ferrors.MissingParameter("Missing `input_format` hash parameter").ForParameter(KeyInputFormat).Build()
	case hasStr:
		chosen = FromString{Text: text, Format: format}
	case hasFormat:
		plan.Ignored = append(plan.Ignored, KeyInputFormat)
	}

	if chosen == nil {
		return FromNow{}, nil
	}
	return chosen, nil
}

func compileModifiers(p Params) ([]Modifier, error) {
	var mods []Modifier

	if tz, ok := p.Lookup(KeyWithTimezone); ok {
		mods = append(mods, WithTimezone{Value: tz})
	}

	for f, fs := range fieldSpecs {
		raw, ok := p.Lookup(fs.key)
		if !ok {
			continue
		}
		var (
			v   int64
			err error
		)
		if fs.signed {
			v, err = strconv.ParseInt(raw, 10, 32)
		} else {
			var u uint64
			u, err = parseUnsigned(raw, 32)
			v = int64(u)
		}
		if err != nil {
			return nil, ferrors.InvalidInteger("Invalid " + fs.label + " parameter").ForParameter(fs.key).WithCause(err).Build()
		}
		mods = append(mods, SetField{Field: Field(f), Value: v})
	}

	for _, subtract := range []bool{false, true} {
		for u, unit := range shiftUnits {
			shift := Shift{Unit: ShiftUnit(u), Subtract: subtract}
			raw, ok := p.Lookup(shift.Key())
			if !ok {
				continue
			}
			var err error
			if unit.calendar {
				shift.Count, err = parseUnsigned(raw, unit.bits)
			} else {
				shift.Amount, err = strconv.ParseInt(raw, 10, 64)
			}
			if err != nil {
				return nil, ferrors.InvalidInteger("Invalid " + strings.ToLower(unit.label) + " parameter").ForParameter(shift.Key()).WithCause(err).Build()
			}
			mods = append(mods, shift)
		}
	}

	return mods, nil
}

func compileFinalizer(p Params, plan *ExecutionPlan) Finalizer {
	var chosen Finalizer
	claim := func(key string, f Finalizer) {
		if chosen != nil {
			plan.Ignored = append(plan.Ignored, key)
			return
		}
		chosen = f
	}

	if pattern, ok := p.Lookup(KeyOutputFormat); ok {
		locale, localized := p.Lookup(KeyLocale)
		claim(KeyOutputFormat, FormatOutput{Pattern: pattern, Locale: locale, Localized: localized})
	} else if _, ok := p.Lookup(KeyLocale); ok {
		plan.Ignored = append(plan.Ignored, KeyLocale)
	}
	if _, ok := p.Lookup(KeyToRFC2822); ok {
		claim(KeyToRFC2822, RFC2822Output{})
	}
	for _, unit := range []TimestampUnit{Seconds, Millis, Micros, Nanos} {
		f := TimestampOutput{Unit: unit}
		if _, ok := p.Lookup(f.Key()); ok {
			claim(f.Key(), f)
		}
	}
	if base, ok := p.Lookup(KeyYearsSince); ok {
		claim(KeyYearsSince, YearsSince{Base: base})
	}

	if chosen == nil {
		return RFC3339Output{}
	}
	return chosen
}

// parseUnsigned accepts an optional leading '+' like the signed parser does.
func parseUnsigned(raw string, bits int) (uint64, error) {
	s := raw
	if len(s) > 1 && s[0] == '+' {
		s = s[1:]
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok {
			numErr.Num = raw
		}
		return 0, err
	}
	return v, nil
}
