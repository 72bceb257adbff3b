package pipeline

import (
	"strings"
	"time"
	"unicode"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

const timezoneHelp = "Supported values are IANA timezones, local or valid fixed offset"

// resolveTimezone returns the fixed-offset location value selects for instant t.
func (p *Pipeline) resolveTimezone(t time.Time, value string) (*time.Location, error) {
	if strings.EqualFold(value, "local") {
		name, offset := p.clock.Now().In(time.Local).Zone()
		return time.FixedZone(name, offset), nil
	}

	if strings.HasPrefix(value, "+") || strings.HasPrefix(value, "-") {
		if offset, ok := parseFixedOffset(value); ok {
			return time.FixedZone("", offset), nil
		}
		if !mayBeZoneName(value) {
			return nil, ferrors.InvalidTimezone("Failed to parse timezone offset. "+timezoneHelp).
				ForParameter(KeyWithTimezone).
				WithContext("value", value).
				Build()
		}
	}

	if p.zones == nil {
		return nil, ferrors.UnsupportedCapability("Named timezones are not enabled. Supported values are local or valid fixed offset").
			ForParameter(KeyWithTimezone).
			Build()
	}
	loc, err := p.zones.ResolveZone(value)
	if err != nil {
		return nil, ferrors.InvalidTimezone("Failed to parse IANA timezone. "+timezoneHelp).
			ForParameter(KeyWithTimezone).
			WithContext("value", value).
			WithCause(err).
			Build()
	}
	name, offset := t.In(loc).Zone()
	return time.FixedZone(name, offset), nil
}

// mayBeZoneName reports whether value could be a zone identifier such as "Etc/GMT-14".
func mayBeZoneName(value string) bool {
	return strings.ContainsRune(value, '/') || strings.IndexFunc(value, unicode.IsLetter) >= 0
}

// parseFixedOffset accepts ±HH, ±HHMM and ±HH:MM with an absolute value below 24 hours.
func parseFixedOffset(value string) (int, bool) {
	if len(value) < 3 || (value[0] != '+' && value[0] != '-') {
		return 0, false
	}
	digits := value[1:]
	switch {
	case len(digits) == 2:
		digits += "00"
	case len(digits) == 5 && digits[2] == ':':
		digits = digits[:2] + digits[3:]
	case len(digits) != 4:
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	hours := int(digits[0]-'0')*10 + int(digits[1]-'0')
	minutes := int(digits[2]-'0')*10 + int(digits[3]-'0')
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	offset := hours*3600 + minutes*60
	if value[0] == '-' {
		offset = -offset
	}
	return offset, true
}
