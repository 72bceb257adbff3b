package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	// Embedded zone database so named zones resolve on hosts without tzdata.
	_ "time/tzdata"

	"github.com/goodsign/monday"
	"github.com/ncruces/go-strftime"
	"golang.org/x/text/language"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

// Clock supplies the current time for the default initializer and the "local" timezone.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// ZoneResolver looks up named time zones.
type ZoneResolver interface {
	ResolveZone(name string) (*time.Location, error)
}

// IANAResolver resolves IANA zone identifiers such as "America/Edmonton".
type IANAResolver struct{}

var errEmptyZone = errors.New("empty zone name")

func (IANAResolver) ResolveZone(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return nil, errEmptyZone
	}
	return time.LoadLocation(name)
}

// LocaleFormatter renders strftime patterns with localized month and weekday names.
type LocaleFormatter interface {
	FormatLocalized(t time.Time, pattern, locale string) (string, error)
}

// MondayFormatter is a LocaleFormatter backed by the monday locale tables. Locale tags may be
// written as "fr_FR" or "fr-FR"; a bare language picks its default region.
type MondayFormatter struct{}

var mondayLocales = func() map[monday.Locale]bool {
	set := make(map[monday.Locale]bool)
	for _, l := range monday.ListLocales() {
		set[l] = true
	}
	return set
}()

// localizedNames maps the strftime name specifiers to the Go layouts monday translates.
var localizedNames = map[byte]string{
	'A': "Monday",
	'a': "Mon",
	'B': "January",
	'b': "Jan",
	'h': "Jan",
}

// FormatLocalized translates the name specifiers through monday and renders every other part
// of pattern with strftime, so it accepts the same specifiers as unlocalized output.
func (MondayFormatter) FormatLocalized(t time.Time, pattern, locale string) (string, error) {
	loc, err := ResolveLocale(locale)
	if err != nil {
		return "", err
	}

	var out, plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			out.WriteString(strftime.Format(plain.String(), t))
			plain.Reset()
		}
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 == len(pattern) {
			plain.WriteByte(pattern[i])
			continue
		}
		if layout, ok := localizedNames[pattern[i+1]]; ok {
			flush()
			out.WriteString(monday.Format(t, layout, loc))
		} else {
			plain.WriteString(pattern[i : i+2])
		}
		i++
	}
	flush()
	return out.String(), nil
}

// ResolveLocale maps a locale tag to a supported monday locale.
func ResolveLocale(locale string) (monday.Locale, error) {
	invalid := ferrors.InvalidLocale(fmt.Sprintf("Invalid locale provided: %s", locale)).ForParameter(KeyLocale)

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", invalid.WithCause(err).Build()
	}
	base, _ := tag.Base()
	region, _ := tag.Region()
	candidate := monday.Locale(base.String() + "_" + region.String())
	if !mondayLocales[candidate] {
		return "", invalid.Build()
	}
	return candidate, nil
}

// SupportedLocales lists the locale tags MondayFormatter accepts, sorted.
func SupportedLocales() []string {
	out := make([]string, 0, len(mondayLocales))
	for l := range mondayLocales {
		out = append(out, string(l))
	}
	sort.Strings(out)
	return out
}
