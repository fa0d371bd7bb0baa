package epoch

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Epoch bounds for the supported civil year range. Go's time package
// wraps rather than failing near the int64 limit, so the range is
// checked before any time.Time is constructed.
const (
	minEpoch = -377705116800 // -9999-01-01T00:00:00Z
	maxEpoch = 253402300799  // 9999-12-31T23:59:59Z
)

// Now returns the current Unix epoch time in seconds.
func Now() int64 {
	return time.Now().Unix()
}

// ParseEpoch parses a decimal epoch-seconds value.
func ParseEpoch(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidEpoch, trimmed)
	}
	return v, nil
}

// isoLayouts are tried in order by ParseISO. RFC3339 covers the
// common forms (time.Parse also accepts fractional seconds, which
// are dropped); the others cover offsets written without a colon.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
}

// hasTimezone reports whether s carries a timezone designator: a Z or
// + anywhere, or a '-' past the date portion (index > 10, beyond
// YYYY-MM-DD). This lexical scan runs before the layout parse so a
// missing timezone gets its own diagnostic instead of a generic parse
// failure; it is deliberately not folded into the parse itself.
func hasTimezone(s string) bool {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == 'Z' || s[i] == '+':
			return true
		case s[i] == '-' && i > 10:
			return true
		}
	}
	return false
}

// ParseISO converts an ISO-8601 timestamp to epoch seconds. The
// timestamp must carry a timezone designator; explicit offsets shift
// the instant to UTC.
func ParseISO(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if !hasTimezone(trimmed) {
		return 0, fmt.Errorf("%w: %s", ErrMissingTimezone, trimmed)
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidISO, trimmed)
}

// civilFromEpoch maps an epoch value to its UTC civil date and time
// of day, rejecting values outside the supported year range.
func civilFromEpoch(epoch int64) (time.Time, error) {
	if epoch < minEpoch || epoch > maxEpoch {
		return time.Time{}, fmt.Errorf("%w: %d", ErrInvalidEpoch, epoch)
	}
	return time.Unix(epoch, 0).UTC(), nil
}

// epochFromCivil reassembles an epoch value; inputs are always
// interpreted as UTC.
func epochFromCivil(year, month, day, hour, min, sec int) int64 {
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC).Unix()
}

// FormatISO renders an epoch value as YYYY-MM-DDTHH:MM:SSZ. The year
// prints at its natural width (time.Format would zero-pad years below
// 1000 and mangle negative ones), everything else is zero-padded to
// two digits.
func FormatISO(epoch int64) (string, error) {
	t, err := civilFromEpoch(epoch)
	if err != nil {
		return "", err
	}
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return fmt.Sprintf("%d-%02d-%02dT%02d:%02d:%02dZ", year, int(month), day, hour, min, sec), nil
}
