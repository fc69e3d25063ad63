package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrMissingDate   = errors.New("missing date")
	ErrMalformedDate = errors.New("malformed date")
	ErrInvalidDate   = errors.New("invalid date")
)

// DateLayout is the wire format of Gregorian dates accepted by the API.
const DateLayout = "2006-01-02"

// GregorianDate is a proleptic Gregorian calendar date without a time of day.
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// EthiopianDate is a date in the Ethiopian calendar. Month is 1-13, where
// 13 is Pagume.
type EthiopianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewGregorianDate builds a GregorianDate from its components.
func NewGregorianDate(year, month, day int) GregorianDate {
	return GregorianDate{Year: year, Month: month, Day: day}
}

// GregorianDateFromTime returns the calendar date of t in t's location.
func GregorianDateFromTime(t time.Time) GregorianDate {
	year, month, day := t.Date()
	return GregorianDate{Year: year, Month: int(month), Day: day}
}

// Business logic methods for GregorianDate

// Time returns midnight UTC of the date. Out-of-range components are
// normalised the way time.Date does.
func (g GregorianDate) Time() time.Time {
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC)
}

func (g GregorianDate) Weekday() time.Weekday {
	return g.Time().Weekday()
}

func (g GregorianDate) Before(other GregorianDate) bool {
	return g.Time().Before(other.Time())
}

// AddDays returns the date n days after g.
func (g GregorianDate) AddDays(n int) GregorianDate {
	return GregorianDateFromTime(g.Time().AddDate(0, 0, n))
}

// IsValid reports whether the components name a real calendar day, i.e.
// time.Date would not roll them over into another day.
func (g GregorianDate) IsValid() bool {
	if g.Month < 1 || g.Month > 12 || g.Day < 1 {
		return false
	}
	return GregorianDateFromTime(g.Time()) == g
}

func (g GregorianDate) String() string {
	return g.Time().Format(DateLayout)
}

// Business logic methods for EthiopianDate

// IsPagume reports whether the date falls in the short 13th month.
func (e EthiopianDate) IsPagume() bool {
	return e.Month == 13
}
