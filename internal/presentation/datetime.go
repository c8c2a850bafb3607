package presentation

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

type dateLayouts struct {
	date     string
	longDate string
}

var layoutsByLang = [langCount]dateLayouts{
	LangTR: {date: "02 January 2006", longDate: "02 January 2006 Monday"},
	LangEN: {date: "January 02, 2006", longDate: "Monday, January 02, 2006"},
}

const timeLayout = "15:04"

// Formatter renders provider timestamps in the display locale and zone.
type Formatter struct {
	lang        Lang
	locale      monday.Locale
	location    *time.Location
	placeholder string
}

func NewFormatter(tag language.Tag, location *time.Location) *Formatter {
	if location == nil {
		location = time.UTC
	}
	lang := LangOf(tag)
	return &Formatter{
		lang:        lang,
		locale:      mondayLocale(lang, tag),
		location:    location,
		placeholder: messages[lang][MsgDatePlaceholder],
	}
}

func mondayLocale(lang Lang, tag language.Tag) monday.Locale {
	if lang == LangTR {
		return monday.LocaleTrTR
	}
	if region, _ := tag.Region(); region.String() == "GB" {
		return monday.LocaleEnGB
	}
	return monday.LocaleEnUS
}

// Date formats ts as day, month name and year. Missing or unparsable input
// yields the placeholder.
func (f *Formatter) Date(ts string) string {
	t, ok := f.parse(ts)
	if !ok {
		return f.placeholder
	}
	return monday.Format(t, layoutsByLang[f.lang].date, f.locale)
}

// LongDate is Date with the weekday name.
func (f *Formatter) LongDate(ts string) string {
	t, ok := f.parse(ts)
	if !ok {
		return f.placeholder
	}
	return monday.Format(t, layoutsByLang[f.lang].longDate, f.locale)
}

// Time formats ts as 24h hour and minute, or "" when missing.
func (f *Formatter) Time(ts string) string {
	t, ok := f.parse(ts)
	if !ok {
		return ""
	}
	return t.Format(timeLayout)
}

func (f *Formatter) Placeholder() string {
	return f.placeholder
}

func (f *Formatter) parse(ts string) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(f.location), true
}
