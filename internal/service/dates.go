package service

import "time"

// ExpandDateRange turns a [checkIn, checkOut) pair into the ordered list of
// occupied nights, check-in inclusive and check-out exclusive. It fails when
// check-in is in the past or the range is empty, and never returns a partial
// list. Pure function of its inputs.
func ExpandDateRange(checkIn, checkOut time.Time) ([]time.Time, error) {
	checkIn, checkOut = toDay(checkIn), toDay(checkOut)

	if checkIn.Before(toDay(time.Now())) {
		return nil, ErrCheckInPast
	}
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	nights := make([]time.Time, 0, int(checkOut.Sub(checkIn).Hours()/24))
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights, nil
}

// nightsWithin lists the nights of a stored booking, where last is the final
// occupied night (inclusive). Used to re-scan capacity for existing bookings
// without re-applying the not-in-the-past rule.
func nightsWithin(first, last time.Time) []time.Time {
	first, last = toDay(first), toDay(last)
	if first.After(last) {
		return nil
	}
	nights := make([]time.Time, 0)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
