// Package calendar converts Gregorian dates to the Ethiopian calendar.
//
// The Ethiopian year has twelve 30-day months followed by Pagume, a short
// 13th month of 5 or 6 days. A Gregorian date is located relative to the
// Ethiopian New Year it follows, and month and day fall out of the elapsed
// day count by division by 30.
package calendar

import (
	"time"

	"github.com/ethiocal/core/internal/domain/entities"
)

const (
	daysPerMonth = 30

	// Ethiopian years trail Gregorian years by 7 after New Year and 8 before it.
	offsetAfterNewYear  = 7
	offsetBeforeNewYear = 8

	newYearDay     = 11
	newYearLeapDay = 12
)

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// NewYearDate returns the Gregorian date of the Ethiopian New Year that
// falls in gYear: September 11, or September 12 when gYear-1 was a leap year.
func NewYearDate(gYear int) entities.GregorianDate {
	if IsLeap(gYear - 1) {
		return entities.NewGregorianDate(gYear, int(time.September), newYearLeapDay)
	}
	return entities.NewGregorianDate(gYear, int(time.September), newYearDay)
}

// ToEthiopian converts a Gregorian date to its Ethiopian equivalent.
//
// Month is not clamped to 13; callers are expected to pass real dates.
func ToEthiopian(g entities.GregorianDate) entities.EthiopianDate {
	newYear := NewYearDate(g.Year)

	year := g.Year - offsetAfterNewYear
	epoch := newYear
	if g.Before(newYear) {
		year = g.Year - offsetBeforeNewYear
		epoch = NewYearDate(g.Year - 1)
	}

	diff := daysBetween(epoch, g)

	return entities.EthiopianDate{
		Year:  year,
		Month: diff/daysPerMonth + 1,
		Day:   diff%daysPerMonth + 1,
	}
}

// daysBetween returns the whole days elapsed from start to end.
func daysBetween(start, end entities.GregorianDate) int {
	return int(end.Time().Sub(start.Time()) / (24 * time.Hour))
}
