// Package dateparse turns free-form Japanese announcement text into calendar
// instants. Official sites publish dates in several loose shapes
// (2025年9月10日, 9月10日, 2025-09-10, 2025/09/10); a fixed, ordered pattern
// list is tried and the first match wins. The package never errors: text
// without a recognizable date yields ok=false.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// JST is the fixed offset every timestamp in the feed is expressed in.
var JST = time.FixedZone("JST", 9*60*60)

// Now returns the current time in JST. Swappable in tests.
var Now = func() time.Time { return time.Now().In(JST) }

// Pattern order matters: explicit year first, bare month-day second. The
// ISO-like forms are also reachable through the first pattern but are kept
// as distinct steps mirroring the upstream announcement formats.
var (
	reYMD      = regexp.MustCompile(`(20\d{2})[年/.\-]\s*(\d{1,2})[月/.\-]\s*(\d{1,2})日?`)
	reMD       = regexp.MustCompile(`(\d{1,2})[月/.\-]\s*(\d{1,2})日?`)
	reISODash  = regexp.MustCompile(`(20\d{2})-(\d{1,2})-(\d{1,2})`)
	reISOSlash = regexp.MustCompile(`(20\d{2})/(\d{1,2})/(\d{1,2})`)
	reSpaces   = regexp.MustCompile(`\s+`)
	datePrefix = regexp.MustCompile(`^\d{1,2}月\d{1,2}日.?|\d{4}年\d{1,2}月\d{1,2}日.?`)
)

// separators the sites use around a leading date fragment
const trimCutset = " ・:：-"

const maxTitleRunes = 120

// Guess extracts the first date found in text and returns it at hour:min JST.
// A bare month-day gets the current year, never rolled forward to the next
// one: a passed date aging out of the window is safer than inventing a
// future event. Day values are not semantically validated.
func Guess(text string, hour, min int) (time.Time, bool) {
	if m := reYMD.FindStringSubmatch(text); m != nil {
		return date(atoi(m[1]), atoi(m[2]), atoi(m[3]), hour, min), true
	}
	if m := reMD.FindStringSubmatch(text); m != nil {
		return date(Now().Year(), atoi(m[1]), atoi(m[2]), hour, min), true
	}
	if m := reISODash.FindStringSubmatch(text); m != nil {
		return date(atoi(m[1]), atoi(m[2]), atoi(m[3]), hour, min), true
	}
	if m := reISOSlash.FindStringSubmatch(text); m != nil {
		return date(atoi(m[1]), atoi(m[2]), atoi(m[3]), hour, min), true
	}
	return time.Time{}, false
}

// ISO formats t in the fixed JST offset, the only timestamp representation
// the feed emits.
func ISO(t time.Time) string {
	return t.In(JST).Format(time.RFC3339)
}

// CleanSpace collapses runs of whitespace to a single space and trims the
// ends, normalizing text extracted from markup.
func CleanSpace(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// StripDatePrefix removes a leading date fragment from an announcement title
// and trims the separator characters the sites put around it.
func StripDatePrefix(s string) string {
	return strings.Trim(datePrefix.ReplaceAllString(s, ""), trimCutset)
}

// Truncate caps s at the standard title length, counted in runes.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxTitleRunes {
		return s
	}
	return string(r[:maxTitleRunes])
}

func date(y, m, d, hour, min int) time.Time {
	return time.Date(y, time.Month(m), d, hour, min, 0, 0, JST)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
