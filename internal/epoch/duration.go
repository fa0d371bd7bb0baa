// Package epoch implements the timestamp engine behind et: duration
// token parsing, calendar-aware month/year offsets with day clamping,
// and conversion between epoch seconds and ISO-8601.
//
// Everything here is a pure function over its inputs; the package
// keeps no state and is safe for concurrent use.
package epoch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type durationKind int

const (
	kindSeconds durationKind = iota
	kindMonths
	kindYears
)

// Duration is a parsed duration token: either a fixed number of
// seconds or a calendar month/year offset whose seconds value depends
// on the date it is applied to. Values are immutable and comparable;
// the zero value is zero seconds.
type Duration struct {
	kind  durationKind
	secs  int64
	count int32
}

// Seconds returns a fixed duration of n seconds.
func Seconds(n int64) Duration { return Duration{kind: kindSeconds, secs: n} }

// Months returns a calendar offset of n months.
func Months(n int32) Duration { return Duration{kind: kindMonths, count: n} }

// Years returns a calendar offset of n years.
func Years(n int32) Duration { return Duration{kind: kindYears, count: n} }

// AsSeconds returns the seconds value of a fixed duration. Calendar
// durations report false: they have no seconds value without a
// reference date.
func (d Duration) AsSeconds() (int64, bool) {
	if d.kind != kindSeconds {
		return 0, false
	}
	return d.secs, true
}

// Fixed unit multipliers, matched case-insensitively. A bare number
// is seconds.
var fixedUnits = map[string]int64{
	"":  1,
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
	"w": 604800,
}

// ParseDuration parses a duration token: an optional sign, decimal
// digits, and an optional unit suffix.
//
// Fixed units: s (seconds, default), m (minutes), h (hours), d (days),
// w (weeks). Calendar units: M/mo/month/months and Y/y/yr/year/years.
// Capital M is months; lowercase m stays minutes.
func ParseDuration(s string) (Duration, error) {
	token := strings.TrimSpace(s)
	if token == "" {
		return Duration{}, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	sign := int64(1)
	rest := token
	switch token[0] {
	case '+':
		rest = token[1:]
	case '-':
		sign = -1
		rest = token[1:]
	}
	if rest == "" {
		return Duration{}, fmt.Errorf("%w: %s", ErrInvalidDuration, token)
	}

	digitEnd := 0
	for digitEnd < len(rest) && rest[digitEnd] >= '0' && rest[digitEnd] <= '9' {
		digitEnd++
	}
	if digitEnd == 0 {
		return Duration{}, fmt.Errorf("%w: %s", ErrInvalidDuration, token)
	}

	magnitude, err := strconv.ParseUint(rest[:digitEnd], 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %s", ErrInvalidDuration, token)
	}
	unit := rest[digitEnd:]

	// Calendar units win over fixed units. The single letters are
	// case-sensitive (M months vs m minutes), the word forms are not.
	lower := strings.ToLower(unit)
	switch {
	case unit == "M" || lower == "mo" || lower == "month" || lower == "months":
		n, err := calendarCount(sign, magnitude)
		if err != nil {
			return Duration{}, err
		}
		return Months(n), nil
	case unit == "Y" || unit == "y" || lower == "yr" || lower == "year" || lower == "years":
		n, err := calendarCount(sign, magnitude)
		if err != nil {
			return Duration{}, err
		}
		return Years(n), nil
	}

	mult, ok := fixedUnits[lower]
	if !ok {
		return Duration{}, fmt.Errorf("%w: %s", ErrUnsupportedUnit, unit)
	}
	secs, err := fixedSeconds(sign, magnitude, mult)
	if err != nil {
		return Duration{}, err
	}
	return Seconds(secs), nil
}

// calendarCount folds sign and magnitude into an int32 month/year
// count.
func calendarCount(sign int64, magnitude uint64) (int32, error) {
	if sign > 0 && magnitude > math.MaxInt32 {
		return 0, ErrOverflow
	}
	if sign < 0 && magnitude > uint64(1)<<31 {
		return 0, ErrOverflow
	}
	return int32(sign * int64(magnitude)), nil
}

// fixedSeconds computes sign*magnitude*mult with int64 overflow
// checks. The product is built in uint64 because |math.MinInt64| has
// no positive int64 counterpart.
func fixedSeconds(sign int64, magnitude uint64, mult int64) (int64, error) {
	um := uint64(mult)
	if magnitude != 0 && um > math.MaxUint64/magnitude {
		return 0, ErrOverflow
	}
	prod := magnitude * um

	const negLimit = uint64(1) << 63
	if prod > negLimit || (prod == negLimit && sign > 0) {
		return 0, ErrOverflow
	}
	if sign < 0 {
		if prod == negLimit {
			return math.MinInt64, nil
		}
		return -int64(prod), nil
	}
	return int64(prod), nil
}

// IsDuration reports whether a token looks like a duration rather
// than a bare epoch. A leading sign is enough on its own; otherwise a
// token must start with a digit and end with a unit letter. It is a
// routing pre-filter, not a validator: ParseDuration still decides.
//
// The unit letters must stay in lockstep with the suffixes
// ParseDuration accepts.
func IsDuration(s string) bool {
	token := strings.TrimSpace(s)
	if token == "" {
		return false
	}
	first := token[0]
	if first == '+' || first == '-' {
		return true
	}
	if first < '0' || first > '9' {
		return false
	}
	switch token[len(token)-1] {
	case 's', 'm', 'h', 'd', 'w', 'S', 'H', 'D', 'W', 'M', 'Y', 'y':
		return true
	}
	return false
}
