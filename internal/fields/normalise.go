package fields

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Bulletin dates are day-first with dot separators, e.g. "14.02.2012".
const bulletinDateLayout = "02.01.2006"

// ISO output layout for normalised dates.
const isoDateLayout = "2006-01-02"

// Date normalises a "DD.MM.YYYY" date, possibly preceded by a "label:"
// prefix and followed by trailing punctuation, into ISO "YYYY-MM-DD".
// Unparsable input returns ok == false, never an error.
func Date(s string) (string, bool) {
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Trim(s, ". ")
	t, err := time.Parse(bulletinDateLayout, s)
	if err != nil {
		return "", false
	}
	return t.Format(isoDateLayout), true
}

// Integer normalises a signed integer with "." thousands separators.
func Integer(s string) (int, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Boolean resolves the exact tokens "Yes" and "No". Anything else is
// unknown: neither true nor false (ok == false).
func Boolean(s string) (value, ok bool) {
	switch strings.TrimSpace(s) {
	case "Yes":
		return true, true
	case "No":
		return false, true
	default:
		return false, false
	}
}

// A "." or "," followed by exactly three digits is a thousands grouping
// mark, not a decimal point.
var groupingPattern = regexp.MustCompile(`([.,])(\d{3})(\D|$)`)

// Amount normalises a locale-formatted number: spaces stripped, grouping
// separators collapsed, a remaining "," treated as the decimal point.
func Amount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	for {
		collapsed := groupingPattern.ReplaceAllString(s, "$2$3")
		if collapsed == s {
			break
		}
		s = collapsed
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
