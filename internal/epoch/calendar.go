package epoch

// Civil-date arithmetic for calendar-unit offsets. This cannot go
// through time.AddDate: AddDate normalizes Jan 31 + 1 month to Mar 3,
// while et clamps the day to the last valid day of the target month.

// Supported civil year range; results outside it are an overflow.
const (
	minYear = -9999
	maxYear = 9999
)

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isLeap reports whether year is a leap year: divisible by 4, except
// centuries not divisible by 400.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysIn returns the number of days in (year, month).
func daysIn(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return monthDays[month]
}

// floorDiv is division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// addMonths shifts a civil date by n months. The date's absolute
// month index is offset and split back with floor division so that
// negative offsets cross year boundaries correctly; the day is
// clamped to the target month's length (Jan 31 + 1 -> Feb 28/29).
func addMonths(year, month, day, n int) (int, int, int, error) {
	total := int64(year)*12 + int64(month-1) + int64(n)
	y64 := floorDiv(total, 12)
	if y64 < minYear || y64 > maxYear {
		return 0, 0, 0, ErrOverflow
	}
	newYear := int(y64)
	newMonth := int(total-y64*12) + 1

	newDay := day
	if last := daysIn(newYear, newMonth); newDay > last {
		newDay = last
	}
	return newYear, newMonth, newDay, nil
}

// addYears shifts a civil date by n years, keeping the month and
// clamping the day. Clamping only matters for Feb 29 landing in a
// non-leap year.
func addYears(year, month, day, n int) (int, int, int, error) {
	y64 := int64(year) + int64(n)
	if y64 < minYear || y64 > maxYear {
		return 0, 0, 0, ErrOverflow
	}
	newYear := int(y64)

	newDay := day
	if last := daysIn(newYear, month); newDay > last {
		newDay = last
	}
	return newYear, month, newDay, nil
}
