package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout формат календарной даты YYYY-MM-DD
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается при некорректной календарной дате
var ErrInvalidDate = errors.New("types: invalid date")

// Calendar dates are represented as time.Time anchored at UTC midnight.
// Every date <-> weekday conversion goes through DateOnly so that the weekday
// never depends on the process time zone.

// ParseDate парсит дату "YYYY-MM-DD" и возвращает полночь UTC этого дня
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DateOnly возвращает календарную дату t (в собственной локации t), привязанную к полуночи UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate форматирует календарную дату t как YYYY-MM-DD
func FormatDate(t time.Time) string {
	return DateOnly(t).Format(DateLayout)
}

// Weekday возвращает день недели календарной даты: 0 = воскресенье ... 6 = суббота
func Weekday(date time.Time) int {
	return int(DateOnly(date).Weekday())
}

// SameDate проверяет, что два момента приходятся на одну календарную дату
// (каждый в своей локации)
func SameDate(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// AtTimeOfDay возвращает момент времени: календарная дата date и время суток tod в локации loc
func AtTimeOfDay(date time.Time, tod TimeString, loc *time.Location) (time.Time, error) {
	seconds, err := tod.Seconds()
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}

	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, seconds, 0, loc), nil
}
