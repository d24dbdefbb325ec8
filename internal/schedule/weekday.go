package schedule

import (
	"fmt"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
)

// WeekdayLabeler turns a weekday into the short label shown in the strip.
type WeekdayLabeler interface {
	WeekdayLabel(wd time.Weekday) string
}

// LocaleLabeler labels weekdays with CLDR abbreviations for one locale.
type LocaleLabeler struct {
	tr locales.Translator
}

// WeekdayLabel implements WeekdayLabeler.
func (l *LocaleLabeler) WeekdayLabel(wd time.Weekday) string {
	return l.tr.WeekdayAbbreviated(wd)
}

// Locale returns the CLDR locale name backing the labeler.
func (l *LocaleLabeler) Locale() string {
	return l.tr.Locale()
}

// supportedLocales is ordered to line up with the matcher below; the
// first entry is the fallback.
var supportedLocales = []struct {
	tag language.Tag
	new func() locales.Translator
}{
	{language.English, en.New},
	{language.Korean, ko.New},
	{language.Japanese, ja.New},
	{language.German, de.New},
	{language.French, fr.New},
	{language.Spanish, es.New},
	{language.Chinese, zh.New},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// NewWeekdayLabeler returns a labeler for a BCP 47 tag such as "ko" or
// "en-US". Unsupported languages fall back to English; malformed tags
// are an error.
func NewWeekdayLabeler(tag string) (*LocaleLabeler, error) {
	if tag == "" {
		return DefaultLabeler(), nil
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", tag, err)
	}

	_, idx, conf := localeMatcher.Match(parsed)
	if conf == language.No {
		idx = 0
	}

	return &LocaleLabeler{tr: supportedLocales[idx].new()}, nil
}

// DefaultLabeler returns the English labeler.
func DefaultLabeler() *LocaleLabeler {
	return &LocaleLabeler{tr: en.New()}
}

// LongDate formats t as a long localized date, e.g. "November 15, 2024".
func (l *LocaleLabeler) LongDate(t time.Time) string {
	return l.tr.FmtDateLong(t)
}
