// Package fixtime formats a scalar timestamp (seconds since the Unix
// epoch, with fractional seconds in the fractional part) into the six
// FIX temporal field shapes defined in spec §4.1.
//
// The formatter never calls into time.Time: it derives the calendar
// fields itself via integer Gregorian arithmetic so the hot encode
// path avoids time.Time's monotonic-reading and location-lookup
// overhead. Inputs outside [1970-01-01, 2100-01-01) are a non-contract
// (spec §4.1): callers are expected to pass in-range values and the
// formatter does not validate the range itself.
package fixtime

import "strconv"

// Precision selects how many fractional-second digits a timestamp
// shape carries.
type Precision int

// Valid precisions, per spec §4.1.
const (
	PrecisionSeconds Precision = 0
	PrecisionMillis  Precision = 3
	PrecisionMicros  Precision = 6
)

const secondsPerDay = 86400

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

// civil converts a day count since 1970-01-01 into (year, month, day),
// consuming whole years then whole months per spec §4.1's algorithm.
func civil(days int) (year, month, day int) {
	year = 1970
	for {
		length := 365
		if isLeapYear(year) {
			length = 366
		}
		if days < length {
			break
		}
		days -= length
		year++
	}
	month = 1
	for {
		dim := daysInMonth(year, month)
		if days < dim {
			break
		}
		days -= dim
		month++
	}
	day = days + 1
	return year, month, day
}

// components holds the decomposed fields of a timestamp.
type components struct {
	year, month, day     int
	hour, minute, second int
	micros               int
}

// decompose splits ts into integer seconds since epoch and a
// microsecond fraction, then into calendar/clock fields.
func decompose(ts float64) components {
	epochSeconds := int64(ts)
	frac := ts - float64(epochSeconds)
	micros := int64(frac*1e6 + 0.5)
	if micros >= 1_000_000 {
		micros -= 1_000_000
		epochSeconds++
	}
	if micros < 0 {
		micros = 0
	}

	days := epochSeconds / secondsPerDay
	secsOfDay := epochSeconds % secondsPerDay
	if secsOfDay < 0 {
		secsOfDay += secondsPerDay
		days--
	}

	year, month, day := civil(int(days))
	hour := int(secsOfDay / 3600)
	minute := int((secsOfDay % 3600) / 60)
	second := int(secsOfDay % 60)

	return components{
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second,
		micros: int(micros),
	}
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func (c components) date() string {
	return pad(c.year, 4) + pad(c.month, 2) + pad(c.day, 2)
}

func (c components) clock() string {
	return pad(c.hour, 2) + ":" + pad(c.minute, 2) + ":" + pad(c.second, 2)
}

func (c components) fraction(precision Precision) string {
	switch precision {
	case PrecisionMillis:
		return "." + pad(c.micros/1000, 3)
	case PrecisionMicros:
		return "." + pad(c.micros, 6)
	default:
		return ""
	}
}

// UTCTimestamp formats ts as YYYYMMDD-HH:MM:SS[.fff[fff]].
func UTCTimestamp(ts float64, precision Precision) string {
	c := decompose(ts)
	return c.date() + "-" + c.clock() + c.fraction(precision)
}

// UTCTimeOnly formats ts as HH:MM:SS[.fff[fff]], discarding the date.
func UTCTimeOnly(ts float64, precision Precision) string {
	c := decompose(ts)
	return c.clock() + c.fraction(precision)
}

// UTCDateOnly formats ts as YYYYMMDD, discarding the time of day.
func UTCDateOnly(ts float64) string {
	return decompose(ts).date()
}

// LocalMktDate formats ts as YYYYMMDD. It is semantically a calendar
// date rather than a UTC instant (spec §4.1), but the wire shape is
// identical to UTCDateOnly, so it is implemented as the same
// function with a distinct name for call-site clarity.
func LocalMktDate(ts float64) string {
	return decompose(ts).date()
}

// MonthYear formats ts as YYYYMM.
func MonthYear(ts float64) string {
	c := decompose(ts)
	return pad(c.year, 4) + pad(c.month, 2)
}

// formatOffset renders a UTC offset in seconds as "Z" when zero, else
// as "+HH:MM" or "-HH:MM".
func formatOffset(offsetSeconds int) string {
	if offsetSeconds == 0 {
		return "Z"
	}
	sign := "+"
	abs := offsetSeconds
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	hours := abs / 3600
	minutes := (abs % 3600) / 60
	return sign + pad(hours, 2) + ":" + pad(minutes, 2)
}

// TZTimestamp formats ts, shifted by offsetSeconds, as
// YYYYMMDD-HH:MM:SS[.fff[fff]]{Z|±HH:MM}. The shift is applied to the
// input before the wall-clock portion is derived, per spec §4.1: the
// offset describes how the already-shifted local wall clock relates
// to UTC, it is not appended as a separate arithmetic step on top of a
// UTC-formatted string.
func TZTimestamp(ts float64, offsetSeconds int, precision Precision) string {
	shifted := ts + float64(offsetSeconds)
	c := decompose(shifted)
	return c.date() + "-" + c.clock() + c.fraction(precision) + formatOffset(offsetSeconds)
}
