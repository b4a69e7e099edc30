package ultimasgeek

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Dates are printed as "27 enero, 2026". Themes often put a non-breaking
// space between the parts, so whitespace includes Unicode space separators.
var spanishDateRegex = regexp.MustCompile(`(?i)(\d{1,2})[\s\p{Zs}]+([a-záéíóúñ]+)[\s\p{Zs}]*,[\s\p{Zs}]*(\d{4})`)

var spanishMonths = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// argentinaTime is the publisher's offset. Argentina has no DST.
var argentinaTime = time.FixedZone("ART", -3*60*60)

// publishHour is the local time of day assigned to dates that carry no time.
const publishHour = 12

// ParseDate finds the first Spanish "day month, year" date in text and
// returns it as midday Argentina time converted to UTC.
// Only the first candidate is considered; an unknown month or a day that
// does not exist in that month yields false.
func ParseDate(text string) (time.Time, bool) {
	m := spanishDateRegex.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}

	month, ok := spanishMonths[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, publishHour, 0, 0, 0, argentinaTime)
	// time.Date normalizes overflow (31 febrero -> 3 marzo); reject instead
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}

	return t.UTC(), true
}
