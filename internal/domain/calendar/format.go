package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ethiocal/core/internal/domain/entities"
)

// UnknownMonth is rendered in place of a month name outside the table.
const UnknownMonth = "Unknown"

var weekdayNames = [...]string{
	"እሁድ",
	"ሰኞ",
	"ማክሰኞ",
	"እሮብ",
	"ሓሙስ",
	"አርብ",
	"ቅዳሜ",
}

var monthNames = [...]string{
	"መስከረም", // Meskerem
	"ጥቅምት",  // Tikimt
	"ኅዳር",   // Hidar
	"ታህሳስ",  // Tahsas
	"ጥር",    // Tir
	"የካቲት",  // Yekatit
	"መጋቢት",  // Megabit
	"ሚያዝያ",  // Miyazya
	"ግንቦት",  // Ginbot
	"ሰኔ",    // Sene
	"ሐምሌ",   // Hamle
	"ነሐሴ",   // Nehase
	"ጳጉሜ",   // Pagume
}

// MonthName returns the Amharic name of the 1-based Ethiopian month, or
// UnknownMonth if there is no such month.
func MonthName(month int) string {
	if month < 1 || month > len(monthNames) {
		return UnknownMonth
	}
	return monthNames[month-1]
}

// WeekdayName returns the Amharic name of the weekday.
func WeekdayName(day time.Weekday) string {
	return weekdayNames[int(day)%len(weekdayNames)]
}

// FormatNumeric renders e as YYYY-MM-DD.
func FormatNumeric(e entities.EthiopianDate) string {
	return fmt.Sprintf("%d-%s-%s", e.Year, pad(e.Month), pad(e.Day))
}

// FormatVerbose renders e as "<weekday>, <month> <DD>, <YYYY>". The weekday
// is taken from the Gregorian date g, which is the same day.
func FormatVerbose(g entities.GregorianDate, e entities.EthiopianDate) string {
	return fmt.Sprintf("%s, %s %s, %d", WeekdayName(g.Weekday()), MonthName(e.Month), pad(e.Day), e.Year)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
