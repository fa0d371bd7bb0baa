package epoch

import "errors"

// Every error returned by this package wraps exactly one of these
// sentinels; callers match with errors.Is. The offending input is
// carried in the message where there is one.
var (
	ErrInvalidEpoch    = errors.New("invalid epoch timestamp")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrUnsupportedUnit = errors.New("unsupported unit")
	ErrInvalidISO      = errors.New("invalid ISO-8601 timestamp")
	ErrMissingTimezone = errors.New("missing timezone in timestamp")
	ErrOverflow        = errors.New("arithmetic overflow")
)
