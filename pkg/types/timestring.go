package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTime возвращается при некорректной строке времени суток
	ErrInvalidTime = errors.New("types: invalid time of day")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time of day out of range")
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	// MinutesPerDay количество минут в сутках, "24:00" соответствует этому значению
	MinutesPerDay = 24 * 60
)

// TimeString is a time of day in "HH:MM" or "HH:MM:SS" form.
// Values built through the constructors are normalized: zero seconds are dropped
// and hours are zero-padded. "24:00" is accepted as an end-of-day bound.
type TimeString string

// NewTimeStringFromString парсит и нормализует строку времени ("9:00", "09:00:00", "17:30:15")
func NewTimeStringFromString(s string) (TimeString, error) {
	seconds, err := parseSeconds(s)
	if err != nil {
		return "", err
	}
	return fromSeconds(seconds), nil
}

// NewTimeStringFromMinutes строит время суток из количества минут с полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return fromSeconds(minutes * secondsPerMinute), nil
}

// NewTimeString возвращает время суток момента t (в его собственной локации) с точностью до минуты
func NewTimeString(t time.Time) TimeString {
	return fromSeconds(t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute)
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Seconds возвращает количество секунд с полуночи
func (t TimeString) Seconds() (int, error) {
	return parseSeconds(string(t))
}

// Minutes возвращает количество минут с полуночи (секунды отбрасываются)
func (t TimeString) Minutes() (int, error) {
	seconds, err := t.Seconds()
	if err != nil {
		return 0, err
	}
	return seconds / secondsPerMinute, nil
}

// Validate проверяет, что значение является корректным временем суток
func (t TimeString) Validate() error {
	_, err := t.Seconds()
	return err
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут.
// Выход за пределы [00:00, 24:00] считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	seconds, err := t.Seconds()
	if err != nil {
		return "", err
	}

	result := seconds + minutes*secondsPerMinute
	if result < 0 || result > secondsPerDay {
		return "", fmt.Errorf("%w: %s%+d min", ErrTimeOutOfRange, t, minutes)
	}

	return fromSeconds(result), nil
}

// IsBefore возвращает true, если t строго раньше other.
// Для невалидных значений результат всегда false.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Seconds()
	b, errB := other.Seconds()
	return errA == nil && errB == nil && a < b
}

// IsAfter возвращает true, если t строго позже other.
// Для невалидных значений результат всегда false.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Seconds()
	b, errB := other.Seconds()
	return errA == nil && errB == nil && a > b
}

// Equal сравнивает значения по времени, а не по строке ("9:00" == "09:00:00")
func (t TimeString) Equal(other TimeString) bool {
	a, errA := t.Seconds()
	b, errB := other.Seconds()
	return errA == nil && errB == nil && a == b
}

// Format12h форматирует время в 12-часовом виде ("7:00 AM", "12:30 PM").
// Невалидное значение возвращается как есть.
func (t TimeString) Format12h() string {
	minutes, err := t.Minutes()
	if err != nil {
		return string(t)
	}
	return FormatMinutes12h(minutes)
}

// Scan реализует sql.Scanner для колонок типа TIME
func (t *TimeString) Scan(src interface{}) error {
	var raw string

	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = fromSeconds(v.Hour()*secondsPerHour + v.Minute()*secondsPerMinute + v.Second())
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTime, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}

// FormatMinutes12h форматирует минуты с полуночи в 12-часовой вид ("9:30 AM").
// 24:00 отображается как "12:00 AM".
func FormatMinutes12h(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay

	hour := minutes / 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minutes%60, suffix)
}

// ClockTime12h переводит пару (время, AM/PM) в 24-часовое время суток.
// Если час уже больше 12, маркер AM/PM игнорируется ("18:00" + "PM" = 18:00).
// Пустой маркер означает, что время уже в 24-часовом формате.
func ClockTime12h(clock, ampm string) (TimeString, error) {
	seconds, err := parseSeconds(clock)
	if err != nil {
		return "", err
	}

	hour := seconds / secondsPerHour
	rest := seconds % secondsPerHour

	switch strings.ToUpper(strings.TrimSpace(ampm)) {
	case "":
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 12 {
			hour += 12
		}
	default:
		return "", fmt.Errorf("%w: unknown AM/PM marker %q", ErrInvalidTime, ampm)
	}

	if hour >= 24 && !(hour == 24 && rest == 0) {
		return "", fmt.Errorf("%w: %q %s", ErrInvalidTime, clock, ampm)
	}

	return fromSeconds(hour*secondsPerHour + rest), nil
}

func parseSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	values := make([]int, 3)
	for i, part := range parts {
		if part == "" || len(part) > 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
			}
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		values[i] = v
	}

	hour, minute, second := values[0], values[1], values[2]
	if hour > 24 || minute > 59 || second > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	if hour == 24 && (minute != 0 || second != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return hour*secondsPerHour + minute*secondsPerMinute + second, nil
}

func fromSeconds(seconds int) TimeString {
	hour := seconds / secondsPerHour
	minute := (seconds % secondsPerHour) / secondsPerMinute
	second := seconds % secondsPerMinute

	if second == 0 {
		return TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
	}
	return TimeString(fmt.Sprintf("%02d:%02d:%02d", hour, minute, second))
}
