package util

import (
	"bytes"
	"fmt"
	"html/template"
	"math/rand"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var RgxEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func IsEmail(value string) bool {
	if len(value) > 254 {
		return false
	}

	return RgxEmail.MatchString(value)
}

func safeHTML(s string) template.HTML {
	return template.HTML(s)
}

func formatTime(format string, t time.Time) string {
	return t.Format(format)
}

// Slugify is the single authoritative slug derivation: lowercase ASCII,
// whitespace runs collapse to one hyphen, leading/trailing separators are
// dropped. Applying it to its own output is a no-op.
func Slugify(s string) string {
	var buf bytes.Buffer
	pendingSep := false

	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			if pendingSep {
				buf.WriteRune('-')
				pendingSep = false
			}
			buf.WriteRune(unicode.ToLower(r))
		case r == '-', unicode.IsSpace(r):
			if buf.Len() > 0 {
				pendingSep = true
			}
		}
	}

	return buf.String()
}

// FormatDateRange renders a trip date range the way the listing cards do,
// compressing the year (and month) when both ends share them.
func FormatDateRange(start, end time.Time) string {
	switch {
	case start.Year() != end.Year():
		return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	case start.Month() == end.Month() && start.Day() == end.Day():
		return start.Format("Jan 2, 2006")
	default:
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
}

var TemplateFuncs = template.FuncMap{
	// Time functions
	"now":        time.Now,
	"timeSince":  time.Since,
	"timeUntil":  time.Until,
	"formatTime": formatTime,

	// String functions
	"uppercase": strings.ToUpper,
	"lowercase": strings.ToLower,
	"slugify":   Slugify,
	"safeHTML":  safeHTML,

	// Slice functions
	"join": strings.Join,
}

func GenerateVerificationCode() string {
	rand.Seed(time.Now().UnixNano())
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

// StrPtr returns a pointer to the given string.
func StrPtr(s string) *string {
	return &s
}
