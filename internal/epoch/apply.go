package epoch

// Apply shifts an epoch value by a duration. Fixed durations are a
// checked addition; calendar durations decode the epoch to a civil
// date, run the month/year offset, and re-encode with the time of day
// preserved exactly.
func Apply(epoch int64, d Duration) (int64, error) {
	if d.kind == kindSeconds {
		return addChecked(epoch, d.secs)
	}

	t, err := civilFromEpoch(epoch)
	if err != nil {
		return 0, err
	}
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	var newYear, newMonth, newDay int
	switch d.kind {
	case kindMonths:
		newYear, newMonth, newDay, err = addMonths(year, int(month), day, int(d.count))
	case kindYears:
		newYear, newMonth, newDay, err = addYears(year, int(month), day, int(d.count))
	}
	if err != nil {
		return 0, err
	}
	return epochFromCivil(newYear, newMonth, newDay, hour, min, sec), nil
}

// addChecked is int64 addition that reports overflow instead of
// wrapping.
func addChecked(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}
