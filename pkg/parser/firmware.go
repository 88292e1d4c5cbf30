package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date-pattern families tried in fixed priority order. The first family
// that yields a syntactically valid date wins; within a family, matches
// are tried left to right.
var (
	isoDatePat       = regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)
	monthNameDatePat = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?[ -](\d{4})\b`)
	monthYearDatePat = regexp.MustCompile(`\b(\d{1,2})[-/](\d{4})\b`)
	compactDatePat   = regexp.MustCompile(`\b(\d{8}|\d{6})\b`)
)

var monthAbbrevs = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Build-date years outside this window are treated as build numbers,
// not dates.
const (
	minFirmwareYear = 1990
	maxFirmwareYear = 2100
)

// FirmwareDate extracts a build date from a firmware version string.
// It tries ISO dates (2023-06-01, 2023/06/01), month-name dates
// (Jun 2023), numeric month-year (06-2023), and compact build dates
// (20230601, 230601) in that order. Returns false when no pattern
// yields a valid date.
func FirmwareDate(version string) (time.Time, bool) {
	for _, m := range isoDatePat.FindAllStringSubmatch(version, -1) {
		if d, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3])); ok {
			return d, true
		}
	}

	for _, m := range monthNameDatePat.FindAllStringSubmatch(version, -1) {
		month := monthAbbrevs[strings.ToLower(m[1])]
		if d, ok := makeDate(atoi(m[2]), int(month), 1); ok {
			return d, true
		}
	}

	for _, m := range monthYearDatePat.FindAllStringSubmatch(version, -1) {
		if d, ok := makeDate(atoi(m[2]), atoi(m[1]), 1); ok {
			return d, true
		}
	}

	for _, m := range compactDatePat.FindAllStringSubmatch(version, -1) {
		s := m[1]
		var year, month, day int
		if len(s) == 8 {
			year, month, day = atoi(s[:4]), atoi(s[4:6]), atoi(s[6:8])
		} else {
			// Two-digit years read as 20YY.
			year, month, day = 2000+atoi(s[:2]), atoi(s[2:4]), atoi(s[4:6])
		}
		if d, ok := makeDate(year, month, day); ok {
			return d, true
		}
	}

	return time.Time{}, false
}

// makeDate validates the components and returns a UTC midnight date.
// time.Date normalizes overflow (Feb 30 becomes Mar 2), so the result
// is compared back against the inputs.
func makeDate(year, month, day int) (time.Time, bool) {
	if year < minFirmwareYear || year > maxFirmwareYear {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// oldVersionPrefixes match version-number tokens of firmware lines long
// past end of support.
var oldVersionPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`^6\.[0-4]\.`),
	regexp.MustCompile(`^5\.`),
	regexp.MustCompile(`^4\.`),
	regexp.MustCompile(`^3\.`),
}

var oldVersionMarkers = []string{"old", "legacy", "deprecated"}

// KnownOldFirmware reports whether a version string matches the static
// table of known-outdated markers. Used as the fallback when no build
// date can be extracted.
func KnownOldFirmware(version string) bool {
	lower := strings.ToLower(version)
	for _, marker := range oldVersionMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	for _, tok := range strings.Fields(version) {
		for _, p := range oldVersionPrefixes {
			if p.MatchString(tok) {
				return true
			}
		}
	}
	return false
}
