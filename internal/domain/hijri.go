package domain

import (
	"fmt"
	"time"
)

var hijriMonths = [12]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
}

// HijriDate is a date in the tabular Islamic calendar
type HijriDate struct {
	Day   int
	Month int // 1-12
	Year  int
}

// MonthName returns the transliterated month name
func (h HijriDate) MonthName() string {
	if h.Month < 1 || h.Month > 12 {
		return ""
	}
	return hijriMonths[h.Month-1]
}

func (h HijriDate) String() string {
	return fmt.Sprintf("%d %s %d", h.Day, h.MonthName(), h.Year)
}

// ToHijri converts a Gregorian calendar date using the arithmetic (tabular) calendar.
// Observed-moon calendars can differ by a day or two.
func ToHijri(t time.Time) HijriDate {
	gy, gm, gd := t.Date()
	year, month, day := gy, int(gm), gd

	// Julian day number
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	l := jdn - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	hMonth := (24 * l) / 709
	hDay := l - (709*hMonth)/24
	hYear := 30*n + j - 30

	return HijriDate{Day: hDay, Month: hMonth, Year: hYear}
}
