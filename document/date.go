// date.go implements rendering of creation times.
//
// Design: "local" output depends on the machine (zone and locale) so both
// are fields of DateFormatter. The zero DateFormatter reads them from the
// environment; tests pin them. Relative phrasing is a plug-in function with
// a go-humanize default.

package document

import (
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
)

// DateFormat names a rendering mode for Formatted.Date.
type DateFormat string

// Supported date formats.
const (
	DateISO      DateFormat = "ISO"      // 2025-01-02T15:04:05.000Z
	DateLocal    DateFormat = "local"    // locale and zone dependent
	DateRelative DateFormat = "relative" // "3 days ago"
)

// DateFormats returns the recognised formats.
func DateFormats() []DateFormat {
	return []DateFormat{DateISO, DateLocal, DateRelative}
}

// ParseDateFormat converts a user-supplied name into a DateFormat. An empty
// name selects DateISO.
func ParseDateFormat(s string) (DateFormat, error) {
	switch f := DateFormat(s); f {
	case "":
		return DateISO, nil
	case DateISO, DateLocal, DateRelative:
		return f, nil
	default:
		return "", &UnsupportedFormatError{Format: s}
	}
}

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// RelativeFunc renders then as a short phrase relative to now.
type RelativeFunc func(then, now time.Time) string

// HumanRelative is the default RelativeFunc ("3 days ago", "now").
func HumanRelative(then, now time.Time) string {
	return humanize.RelTime(then, now, "ago", "from now")
}

// DateFormatter renders timestamps. Every field is optional.
type DateFormatter struct {
	// Location for DateLocal. Nil means time.Local.
	Location *time.Location
	// Locale picks the DateLocal layout. language.Und means the
	// LC_ALL, LC_TIME or LANG environment variable.
	Locale language.Tag
	// Now is the reference time for DateRelative. Nil means time.Now.
	Now func() time.Time
	// Relative renders DateRelative. Nil means HumanRelative.
	Relative RelativeFunc
}

// FormatDate renders t in the given format. An empty format means DateISO.
func (f DateFormatter) FormatDate(t time.Time, format DateFormat) (string, error) {
	switch format {
	case DateISO, "":
		return t.UTC().Format(isoLayout), nil
	case DateLocal:
		return t.In(f.location()).Format(LocalLayout(f.locale())), nil
	case DateRelative:
		rel := f.Relative
		if rel == nil {
			rel = HumanRelative
		}
		now := time.Now
		if f.Now != nil {
			now = f.Now
		}
		return rel(t, now()), nil
	default:
		return "", &UnsupportedFormatError{Format: string(format)}
	}
}

func (f DateFormatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

func (f DateFormatter) locale() language.Tag {
	if !f.Locale.IsRoot() {
		return f.Locale
	}
	return EnvLocale()
}

// localeLayouts pairs supported locales with their date-time layout. The
// first entry is the fallback for unmatched locales.
var localeLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006, 3:04:05 PM"},
	{language.BritishEnglish, "02/01/2006, 15:04:05"},
	{language.German, "2.1.2006, 15:04:05"},
	{language.French, "02/01/2006 15:04:05"},
	{language.Spanish, "2/1/2006, 15:04:05"},
	{language.Japanese, "2006/1/2 15:04:05"},
	{language.Chinese, "2006/1/2 15:04:05"},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(localeLayouts))
	for i, l := range localeLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// LocalLayout returns the time layout used for DateLocal in locale.
func LocalLayout(locale language.Tag) string {
	_, i, _ := localeMatcher.Match(locale)
	return localeLayouts[i].layout
}

// EnvLocale reads the locale from LC_ALL, LC_TIME or LANG (first non-empty).
// POSIX names such as "de_DE.UTF-8" are accepted. Returns language.Und when
// nothing usable is set.
func EnvLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return parsePOSIXLocale(v)
		}
	}
	return language.Und
}

func parsePOSIXLocale(s string) language.Tag {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
