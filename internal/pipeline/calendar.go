package pipeline

import (
	"math"
	"time"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

// Representable instants span years -262143 through 262142.
const (
	minYear = -262143
	maxYear = 262142

	maxDaySpan = 366 * (maxYear - minYear + 1)
)

var (
	minInstant = time.Date(minYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxInstant = time.Date(maxYear, time.December, 31, 23, 59, 59, 999_999_999, time.UTC)
)

func inRange(t time.Time) bool {
	return !t.Before(minInstant) && !t.After(maxInstant)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// Field is a calendar or clock field a SetField modifier replaces.
type Field int

const (
	FieldOrdinal Field = iota
	FieldOrdinal0
	FieldYear
	FieldMonth
	FieldMonth0
	FieldDay
	FieldDay0
	FieldHour
	FieldMinute
	FieldSecond
	FieldNanosecond
)

// civil is the wall clock reading of an instant in its own offset.
type civil struct {
	year                      int
	month                     time.Month
	day, hour, min, sec, nsec int
}

func civilOf(t time.Time) civil {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return civil{year: y, month: m, day: d, hour: h, min: mi, sec: s, nsec: t.Nanosecond()}
}

func (c civil) in(loc *time.Location) time.Time {
	return time.Date(c.year, c.month, c.day, c.hour, c.min, c.sec, c.nsec, loc)
}

type fieldSpec struct {
	key      string
	label    string
	signed   bool
	rangeMsg string
	set      func(c *civil, v int64) bool
}

// fieldSpecs is indexed by Field and ordered as the setters are applied.
var fieldSpecs = []fieldSpec{
	FieldOrdinal: {key: KeyWithOrdinal, label: "ordinal", rangeMsg: "Ordinal parameter out of range",
		set: func(c *civil, v int64) bool { return setOrdinal(c, v) }},
	FieldOrdinal0: {key: KeyWithOrdinal0, label: "ordinal", rangeMsg: "Ordinal parameter out of range",
		set: func(c *civil, v int64) bool { return setOrdinal(c, v+1) }},
	FieldYear: {key: KeyWithYear, label: "year", signed: true, rangeMsg: "Year parameter out of range or produces invalid date",
		set: func(c *civil, v int64) bool {
			if v < minYear || v > maxYear || c.day > daysIn(int(v), c.month) {
				return false
			}
			c.year = int(v)
			return true
		}},
	FieldMonth: {key: KeyWithMonth, label: "month", rangeMsg: "Month parameter out of range or produces invalid date",
		set: func(c *civil, v int64) bool { return setMonth(c, v) }},
	FieldMonth0: {key: KeyWithMonth0, label: "month", rangeMsg: "Month parameter out of range or produces invalid date",
		set: func(c *civil, v int64) bool { return setMonth(c, v+1) }},
	FieldDay: {key: KeyWithDay, label: "day", rangeMsg: "Day parameter out of range or produces invalid date",
		set: func(c *civil, v int64) bool { return setDay(c, v) }},
	FieldDay0: {key: KeyWithDay0, label: "day", rangeMsg: "Day parameter out of range or produces invalid date",
		set: func(c *civil, v int64) bool { return setDay(c, v+1) }},
	FieldHour: {key: KeyWithHour, label: "hour", rangeMsg: "Hour parameter out of range or produces invalid date",
		set: func(c *civil, v int64) bool { return setClock(&c.hour, v, 23) }},
	FieldMinute: {key: KeyWithMinute, label: "minute", rangeMsg: "Minute parameter out of range or produces invalid date",
		set: func(c *civil, v int64) bool { return setClock(&c.min, v, 59) }},
	FieldSecond: {key: KeyWithSecond, label: "second", rangeMsg: "Second parameter out of range or produces invalid date",
		set: func(c *civil, v int64) bool { return setClock(&c.sec, v, 59) }},
	FieldNanosecond: {key: KeyWithNanosecond, label: "nano-second", rangeMsg: "Nano-second parameter out of range or produces invalid date",
		set: func(c *civil, v int64) bool { return setClock(&c.nsec, v, 999_999_999) }},
}

func setOrdinal(c *civil, day int64) bool {
	if day < 1 || day > int64(daysInYear(c.year)) {
		return false
	}
	d := time.Date(c.year, time.January, int(day), 0, 0, 0, 0, time.UTC)
	c.month, c.day = d.Month(), d.Day()
	return true
}

func setMonth(c *civil, month int64) bool {
	if month < 1 || month > 12 || c.day > daysIn(c.year, time.Month(month)) {
		return false
	}
	c.month = time.Month(month)
	return true
}

func setDay(c *civil, day int64) bool {
	if day < 1 || day > int64(daysIn(c.year, c.month)) {
		return false
	}
	c.day = int(day)
	return true
}

func setClock(field *int, v, limit int64) bool {
	if v < 0 || v > limit {
		return false
	}
	*field = int(v)
	return true
}

func applyField(t time.Time, m SetField) (time.Time, error) {
	fs := fieldSpecs[m.Field]
	c := civilOf(t)
	if !fs.set(&c, m.Value) {
		return t, ferrors.FieldOutOfRange(fs.rangeMsg).ForParameter(fs.key).WithContext("value", m.Value).Build()
	}
	out := c.in(t.Location())
	if !inRange(out) {
		return t, ferrors.OutOfRange(fs.rangeMsg).ForParameter(fs.key).Build()
	}
	return out, nil
}

// ShiftUnit is the granularity of a Shift modifier.
type ShiftUnit int

const (
	ShiftMonths ShiftUnit = iota
	ShiftWeeks
	ShiftDays
	ShiftHours
	ShiftMinutes
	ShiftSeconds
	ShiftMilliseconds
	ShiftMicroseconds
	ShiftNanoseconds
)

type shiftUnit struct {
	name     string
	label    string
	calendar bool
	bits     int
	seconds  int64 // per unit, whole-second units
	nanos    int64 // per unit, sub-second units
}

// shiftUnits is indexed by ShiftUnit and ordered as the deltas are applied.
var shiftUnits = []shiftUnit{
	ShiftMonths:       {name: "months", label: "Months", calendar: true, bits: 32},
	ShiftWeeks:        {name: "weeks", label: "Weeks", seconds: 7 * 24 * 3600},
	ShiftDays:         {name: "days", label: "Days", calendar: true, bits: 64},
	ShiftHours:        {name: "hours", label: "Hours", seconds: 3600},
	ShiftMinutes:      {name: "minutes", label: "Minutes", seconds: 60},
	ShiftSeconds:      {name: "seconds", label: "Seconds", seconds: 1},
	ShiftMilliseconds: {name: "milliseconds", label: "Milli-seconds", nanos: 1_000_000},
	ShiftMicroseconds: {name: "microseconds", label: "Micro-seconds", nanos: 1_000},
	ShiftNanoseconds:  {name: "nanoseconds", label: "Nano-seconds", nanos: 1},
}

func applyShift(t time.Time, m Shift) (time.Time, error) {
	unit := shiftUnits[m.Unit]
	tooLarge := ferrors.OutOfRange(unit.label + " parameter out of range").ForParameter(m.Key())
	invalid := ferrors.OutOfRange(unit.label + " parameter out of range or produces invalid date").ForParameter(m.Key())

	var out time.Time
	switch m.Unit {
	case ShiftMonths:
		out = addMonths(t, m.Count, m.Subtract)
	case ShiftDays:
		if m.Count > maxDaySpan {
			return t, invalid.Build()
		}
		n := int(m.Count)
		if m.Subtract {
			n = -n
		}
		out = t.AddDate(0, 0, n)
	default:
		var secs, nanos int64
		if unit.seconds > 0 {
			var ok bool
			if secs, ok = mulInt64(m.Amount, unit.seconds); !ok {
				return t, tooLarge.Build()
			}
		} else {
			perSecond := int64(time.Second) / unit.nanos
			secs = m.Amount / perSecond
			nanos = (m.Amount % perSecond) * unit.nanos
		}
		if m.Subtract {
			if secs == math.MinInt64 {
				return t, tooLarge.Build()
			}
			secs, nanos = -secs, -nanos
		}

		total, ok := addInt64(t.Unix(), secs)
		if !ok || total < minInstant.Unix()-1 || total > maxInstant.Unix()+1 {
			return t, invalid.Build()
		}
		out = time.Unix(total, int64(t.Nanosecond())+nanos).In(t.Location())
	}

	if !inRange(out) {
		return t, invalid.Build()
	}
	return out, nil
}

// addMonths moves by calendar months, clamping the day to the last day of the target month.
func addMonths(t time.Time, count uint64, subtract bool) time.Time {
	n := int64(count)
	if subtract {
		n = -n
	}
	c := civilOf(t)
	total := int64(c.year)*12 + int64(c.month-1) + n
	year := floorDiv(total, 12)
	c.year = int(year)
	c.month = time.Month(total-year*12) + 1
	c.day = min(c.day, daysIn(c.year, c.month))
	return c.in(t.Location())
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}
