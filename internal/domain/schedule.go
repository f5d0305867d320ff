package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// RecurringSlot represents a weekly-recurring time window of a booking template
// IsAvailable = false явно блокирует окно (используется для вырезания времени
// из расписания, открытого исключением или дефолтными часами шаблона)
type RecurringSlot struct {
	ID          int64
	TemplateID  int64
	DayOfWeek   time.Weekday // 0 = Sunday ... 6 = Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
}

// Overlaps returns true if the slot's [StartTime, EndTime) range overlaps the
// given range on the same weekday. Touching boundaries do not overlap.
func (s *RecurringSlot) Overlaps(dayOfWeek time.Weekday, start, end types.TimeString) bool {
	if s.DayOfWeek != dayOfWeek {
		return false
	}
	return s.StartTime.IsBefore(end) && start.IsBefore(s.EndTime)
}

// DateException represents a one-off full-day availability override for a
// specific calendar date, taking precedence over recurring slots
type DateException struct {
	ID            int64
	TemplateID    int64
	ExceptionDate time.Time // только дата, время обнулено
	IsAvailable   bool
	CreatedAt     time.Time
}

// MatchesDate returns true if the exception is for the given calendar date
func (e *DateException) MatchesDate(date time.Time) bool {
	y1, m1, d1 := e.ExceptionDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TimeWindow представляет дискретное окно фиксированной длительности,
// которое клиент может забронировать
type TimeWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Overlaps returns true if two windows overlap. Touching boundaries do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(w.EndTime)
}
