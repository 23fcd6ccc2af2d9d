// Package validate implements value predicates and the per-entity
// business-rule validators. Entity validators aggregate violations and
// never stop at the first one; faults are reserved for malformed
// snapshots and are raised by the extractors, not here.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// BoardDate is the date format stored in board cells.
const BoardDate = "2006-01-02"

var (
	timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	guidRe      = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	// Characters that collide with the downstream parameter delimiter.
	delimiterRe = regexp.MustCompile(`[|\r\n]`)
	nameRe      = regexp.MustCompile(`[|\r\n"\\]`)
)

// IsInt reports whether s is a base-10 integer.
func IsInt(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

// ParseIntInRange parses s and checks it falls within [min, max].
func ParseIntInRange(s string, min, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}

// IntInRange reports whether s is an integer in [min, max].
func IntInRange(s string, min, max int) bool {
	_, ok := ParseIntInRange(s, min, max)
	return ok
}

// FloatInRange reports whether s is a number in [min, max].
func FloatInRange(s string, min, max float64) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && f >= min && f <= max
}

// IsTimeOfDay reports whether s is a 24h "HH:MM" time.
func IsTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(strings.TrimSpace(s))
}

// IsGUID reports whether s is a GUID-shaped identifier.
func IsGUID(s string) bool {
	return guidRe.MatchString(strings.TrimSpace(s))
}

// IsCommaIntList reports whether s is a non-empty comma-separated list
// of integers.
func IsCommaIntList(s string) bool {
	_, ok := ParseCommaInts(s)
	return ok
}

// ParseCommaInts parses a comma-separated integer list.
func ParseCommaInts(s string) ([]int, bool) {
	parts := SplitCommaList(s)
	if len(parts) == 0 {
		return nil, false
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// SplitCommaList splits a comma-separated list, trimming whitespace
// and dropping empty entries.
func SplitCommaList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LengthBetween reports whether len(s) is within [min, max].
func LengthBetween(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}

// ContainsDelimiter reports whether s contains a character reserved by
// the downstream parameter format (pipe, CR, LF).
func ContainsDelimiter(s string) bool {
	return delimiterRe.MatchString(s)
}

// HasForbiddenNameChars reports whether a campaign name contains a
// character from the forbidden set.
func HasForbiddenNameChars(s string) bool {
	return nameRe.MatchString(s)
}

// InList reports whether s equals one of the allowed values.
func InList(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// ParseBoardDate parses a board date cell.
func ParseBoardDate(s string) (time.Time, bool) {
	t, err := time.Parse(BoardDate, strings.TrimSpace(s))
	return t, err == nil
}
