package prayer

import "fmt"

// HijriDate is a date on the Islamic lunar calendar.
type HijriDate struct {
	Day       int    `json:"day"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Year      int    `json:"year"`
}

// String renders the date as "12 Ramadan 1447 AH".
func (h HijriDate) String() string {
	return fmt.Sprintf("%d %s %d AH", h.Day, h.MonthName, h.Year)
}

// Day is one Gregorian day's prayer schedule with its Hijri equivalent.
type Day struct {
	Date    string    `json:"date"` // dd-mm-yyyy
	Timings TimeSet   `json:"timings"`
	Hijri   HijriDate `json:"hijri"`
	Method  int       `json:"method"`
}
