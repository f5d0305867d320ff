package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM
const timeFormat = "15:04"

// minutesPerDay количество минут в сутках
const minutesPerDay = 24 * 60

// TimeString время суток в формате "HH:MM" (например, "09:30")
// Используется для хранения времени без привязки к дате и таймзоне
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if t.IsZero() {
		return fmt.Errorf("time value is empty")
	}
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time format %q, expected HH:MM: %v", string(t), err)
	}
	return nil
}

// TotalMinutes возвращает количество минут с начала суток
func (t TimeString) TotalMinutes() (int, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM: %v", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if minutes < 0 {
		return "", fmt.Errorf("minutes must be non-negative, got %d", minutes)
	}

	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}

	// Результат за пределами суток выразить в HH:MM нельзя
	total += minutes
	if total >= minutesPerDay {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value реализует driver.Valuer для записи в БД
// Пустое значение легально - колонки часов хранят '' как "не задано"
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return "", nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает строки, []byte и time.Time (колонки типа TIME)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Пустая строка в колонке означает незаданное время
	if s == "" {
		*t = ""
		return nil
	}
	// Колонки TIME отдаются как "15:04:05" - отрезаем секунды
	if len(s) > len(timeFormat) {
		s = s[:len(timeFormat)]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
