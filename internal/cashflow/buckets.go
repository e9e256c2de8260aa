package cashflow

import "time"

type periodKind int

const (
	periodDay periodKind = iota
	periodWeek
	periodMonth
)

// period is a half-open [start, end) bucket with its chart label.
type period struct {
	start time.Time
	end   time.Time
	label string
}

// selectPeriodKind applies the three-tier adaptive bucketing rule to the
// whole range: >=11 months or >=335 days bucket by calendar month, >=3
// months or >90 days bucket by ISO week, anything shorter by calendar day.
func selectPeriodKind(rangeStart, rangeEnd time.Time) periodKind {
	months := (rangeEnd.Year()-rangeStart.Year())*12 + int(rangeEnd.Month()) - int(rangeStart.Month())
	days := int(rangeEnd.Sub(rangeStart).Hours() / 24)

	switch {
	case months >= 11 || days >= 335:
		return periodMonth
	case months >= 3 || days > 90:
		return periodWeek
	default:
		return periodDay
	}
}

func buildPeriods(rangeStart, rangeEnd time.Time) []period {
	switch selectPeriodKind(rangeStart, rangeEnd) {
	case periodMonth:
		return monthPeriods(rangeStart, rangeEnd)
	case periodWeek:
		return weekPeriods(rangeStart, rangeEnd)
	default:
		return dayPeriods(rangeStart, rangeEnd)
	}
}

// monthPeriods emits one bucket per calendar month touched by the range,
// clipped to the range bounds at the first and last bucket.
func monthPeriods(rangeStart, rangeEnd time.Time) []period {
	var periods []period

	cursor := time.Date(rangeStart.Year(), rangeStart.Month(), 1, 0, 0, 0, 0, rangeStart.Location())
	for !cursor.After(rangeEnd) {
		next := cursor.AddDate(0, 1, 0)
		periods = appendPeriod(periods, period{
			start: clipStart(cursor, rangeStart),
			end:   clipEnd(next, rangeEnd),
			label: cursor.Format("Jan 2006"),
		})
		cursor = next
	}

	return periods
}

// weekPeriods walks forward from the Monday of the range's first week in
// 7-day steps until the range end is exceeded, clipping the outer buckets.
func weekPeriods(rangeStart, rangeEnd time.Time) []period {
	var periods []period

	cursor := startOfISOWeek(rangeStart)
	for !cursor.After(rangeEnd) {
		next := cursor.AddDate(0, 0, 7)
		periods = appendPeriod(periods, period{
			start: clipStart(cursor, rangeStart),
			end:   clipEnd(next, rangeEnd),
			label: cursor.Format("02 Jan"),
		})
		cursor = next
	}

	return periods
}

func dayPeriods(rangeStart, rangeEnd time.Time) []period {
	var periods []period

	cursor := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, rangeStart.Location())
	for !cursor.After(rangeEnd) {
		next := cursor.AddDate(0, 0, 1)
		periods = appendPeriod(periods, period{
			start: clipStart(cursor, rangeStart),
			end:   clipEnd(next, rangeEnd),
			label: cursor.Format("02 Jan"),
		})
		cursor = next
	}

	return periods
}

// appendPeriod drops zero-width buckets left over when the range end falls
// exactly on a period boundary.
func appendPeriod(periods []period, p period) []period {
	if !p.start.Before(p.end) {
		return periods
	}
	return append(periods, p)
}

// startOfISOWeek returns the Monday 00:00 of the week containing t.
func startOfISOWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

func clipStart(start, rangeStart time.Time) time.Time {
	if start.Before(rangeStart) {
		return rangeStart
	}
	return start
}

func clipEnd(end, rangeEnd time.Time) time.Time {
	if end.After(rangeEnd) {
		return rangeEnd
	}
	return end
}
