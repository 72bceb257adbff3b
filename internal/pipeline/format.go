package pipeline

import (
	"math"
	"net/mail"
	"strconv"
	"time"

	"github.com/ncruces/go-strftime"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

const rfc2822Layout = "Mon, 2 Jan 2006 15:04:05 -0700"

var (
	minNanoInstant = time.Unix(0, math.MinInt64)
	maxNanoInstant = time.Unix(0, math.MaxInt64)
)

// formatRFC3339 writes a numeric offset (never "Z") and only as many fractional digits as
// needed, in groups of three.
func formatRFC3339(t time.Time) string {
	layout := "2006-01-02T15:04:05"
	switch ns := t.Nanosecond(); {
	case ns == 0:
	case ns%1_000_000 == 0:
		layout += ".000"
	case ns%1_000 == 0:
		layout += ".000000"
	default:
		layout += ".000000000"
	}
	return t.Format(layout + "-07:00")
}

func formatRFC2822(t time.Time) string {
	return t.Format(rfc2822Layout)
}

// parseRFC3339 also accepts a lowercase or space date/time separator, a lowercase "z", and a
// leap second (":60"), which is read as the first instant of the following second.
func parseRFC3339(text string) (time.Time, error) {
	b := []byte(text)
	if len(b) > 10 && (b[10] == 't' || b[10] == ' ') {
		b[10] = 'T'
	}
	if n := len(b); n > 0 && b[n-1] == 'z' {
		b[n-1] = 'Z'
	}
	leap := len(b) > 19 && b[16] == ':' && b[17] == '6' && b[18] == '0'
	if leap {
		b[17] = '5'
		b[18] = '9'
	}
	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil || !leap {
		return t, err
	}
	return t.Truncate(time.Second).Add(time.Second), nil
}

func parseRFC2822(text string) (time.Time, error) {
	return mail.ParseDate(text)
}

// parseWithFormat reads a strftime-formatted wall clock and places it in UTC. Offsets in the
// input are not applied.
func parseWithFormat(text, format string) (time.Time, error) {
	t, err := strftime.Parse(format, text)
	if err != nil {
		return time.Time{}, err
	}
	return civilOf(t).in(time.UTC), nil
}

func formatTimestamp(t time.Time, unit TimestampUnit) (string, error) {
	switch unit {
	case Millis:
		return strconv.FormatInt(t.UnixMilli(), 10), nil
	case Micros:
		return strconv.FormatInt(t.UnixMicro(), 10), nil
	case Nanos:
		if t.Before(minNanoInstant) || t.After(maxNanoInstant) {
			return "", ferrors.OutOfRange("An i64 with nanosecond precision can span a range of ~584 years. This timestamp is out of range.").
				ForParameter(KeyToTimestampNanos).
				Build()
		}
		return strconv.FormatInt(t.UnixNano(), 10), nil
	default:
		return strconv.FormatInt(t.Unix(), 10), nil
	}
}

// yearsSince counts whole calendar years from base to t, comparing wall clocks in t's offset.
// ok is false when base is later than t.
func yearsSince(t, base time.Time) (years int, ok bool) {
	base = base.In(t.Location())
	years = t.Year() - base.Year()
	if compareWithinYear(civilOf(t), civilOf(base)) < 0 {
		years--
	}
	return years, years >= 0
}

func compareWithinYear(a, b civil) int {
	pairs := [][2]int{
		{int(a.month), int(b.month)},
		{a.day, b.day},
		{a.hour, b.hour},
		{a.min, b.min},
		{a.sec, b.sec},
		{a.nsec, b.nsec},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}
