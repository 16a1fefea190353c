package calendar

import (
	"strconv"
	"time"
)

func ValidateMonth(monthIndex int) error {
	if monthIndex < 0 || monthIndex > 11 {
		return ErrInvalidMonth
	}
	return nil
}

func DaysInMonth(year, monthIndex int) int {
	return time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// PrevMonth steps one month back, rolling over into the previous year.
func PrevMonth(year, monthIndex int) (int, int) {
	if monthIndex <= 0 {
		return year - 1, 11
	}
	return year, monthIndex - 1
}

// NextMonth steps one month forward, rolling over into the next year.
func NextMonth(year, monthIndex int) (int, int) {
	if monthIndex >= 11 {
		return year + 1, 0
	}
	return year, monthIndex + 1
}

func MonthName(monthIndex int) string {
	if ValidateMonth(monthIndex) != nil {
		return ""
	}
	return time.Month(monthIndex + 1).String()
}

// Title renders "February 2024".
func Title(year, monthIndex int) string {
	return MonthName(monthIndex) + " " + strconv.Itoa(year)
}
