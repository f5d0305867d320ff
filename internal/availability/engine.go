package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Движок доступности - чистые функции без I/O и без обращения к часам.
// Все данные (слоты, исключения, параметры шаблона) передаются вызывающей
// стороной, поэтому одинаковые входы всегда дают одинаковый результат.

// IsDateAvailable решает, доступен ли шаблон в указанную дату.
//
// Алгоритм:
//  1. Исключение на эту дату авторитетно и перекрывает всё остальное
//     (полнодневный override).
//  2. Иначе дата доступна, если на её день недели есть хотя бы один
//     слот с IsAvailable = true.
func IsDateAvailable(slots []domain.RecurringSlot, exceptions []domain.DateException, date time.Time) (bool, error) {
	if date.IsZero() {
		return false, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Ищем исключение на дату
	exception, err := findException(exceptions, date)
	if err != nil {
		return false, err
	}
	if exception != nil {
		return exception.IsAvailable, nil
	}

	// 2. Собираем доступные слоты на день недели
	open, err := openSlotsForDay(slots, date.Weekday())
	if err != nil {
		return false, err
	}

	return len(open) > 0, nil
}

// BookableWindows возвращает упорядоченный список окон длительностью
// tpl.DurationMinutes, доступных для бронирования в указанную дату.
//
// Окна нарезаются по каждому доступному слоту дня недели, неполный хвост
// короче длительности отбрасывается. Если дата открыта исключением, а
// позитивных слотов на день недели нет, расписанием служат дефолтные часы
// шаблона. Окна, пересекающиеся с блокирующим слотом (IsAvailable = false),
// выбрасываются. MaxDailyBookings > 0 ограничивает количество окон.
func BookableWindows(
	tpl *domain.BookingTemplate,
	slots []domain.RecurringSlot,
	exceptions []domain.DateException,
	date time.Time,
) ([]domain.TimeWindow, error) {
	if tpl == nil {
		return nil, fmt.Errorf("%w: template is required", ErrInvalidInput)
	}
	if tpl.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive, got %d", ErrInvalidInput, tpl.DurationMinutes)
	}

	available, err := IsDateAvailable(slots, exceptions, date)
	if err != nil {
		return nil, err
	}
	if !available {
		return []domain.TimeWindow{}, nil
	}

	weekday := date.Weekday()

	open, err := openSlotsForDay(slots, weekday)
	if err != nil {
		return nil, err
	}
	sortSlotsByTime(open)

	// Источники окон: доступные слоты дня недели, либо дефолтные часы
	// шаблона, когда день открыт исключением без единого позитивного слота
	ranges := make([]timeRange, 0, len(open))
	for _, slot := range open {
		ranges = append(ranges, timeRange{start: slot.StartTime, end: slot.EndTime})
	}
	if len(ranges) == 0 {
		if !tpl.HasDefaultHours() || !tpl.DefaultStartingHour.IsBefore(tpl.DefaultEndingHour) {
			return []domain.TimeWindow{}, nil
		}
		ranges = append(ranges, timeRange{start: tpl.DefaultStartingHour, end: tpl.DefaultEndingHour})
	}

	blocked := blockedSlotsForDay(slots, weekday)

	windows := make([]domain.TimeWindow, 0)
	for _, r := range ranges {
		partitioned, err := partitionRange(r, tpl.DurationMinutes, blocked)
		if err != nil {
			return nil, err
		}
		windows = append(windows, partitioned...)
	}

	// Потолок окон на день, если задан шаблоном
	if tpl.HasDailyLimit() && len(windows) > tpl.MaxDailyBookings {
		windows = windows[:tpl.MaxDailyBookings]
	}

	return windows, nil
}

// timeRange непрерывный интервал времени суток [start, end)
type timeRange struct {
	start types.TimeString
	end   types.TimeString
}

// partitionRange нарезает интервал на последовательные окна длиной
// durationMinutes; хвост короче длительности отбрасывается, окна,
// пересекающиеся с блокирующими слотами, пропускаются
func partitionRange(r timeRange, durationMinutes int, blocked []domain.RecurringSlot) ([]domain.TimeWindow, error) {
	windows := make([]domain.TimeWindow, 0)

	current := r.start
	for current.IsBefore(r.end) {
		windowEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Окно вышло за пределы суток - дальше нарезать нечего
			break
		}
		if windowEnd.IsAfter(r.end) {
			break
		}

		window := domain.TimeWindow{StartTime: current, EndTime: windowEnd}
		if !overlapsBlocked(window, blocked) {
			windows = append(windows, window)
		}

		current = windowEnd
	}

	return windows, nil
}

// overlapsBlocked проверяет пересечение окна с блокирующими слотами
// Граничащие интервалы пересечением не считаются
func overlapsBlocked(window domain.TimeWindow, blocked []domain.RecurringSlot) bool {
	for _, slot := range blocked {
		if slot.StartTime.IsBefore(window.EndTime) && window.StartTime.IsBefore(slot.EndTime) {
			return true
		}
	}
	return false
}

// findException ищет исключение на дату
// Дубликат исключений на одну дату - нарушение инварианта, наружу уходит
// ErrDataIntegrity, а не произвольно выбранная запись
func findException(exceptions []domain.DateException, date time.Time) (*domain.DateException, error) {
	var found *domain.DateException

	for i := range exceptions {
		if !exceptions[i].MatchesDate(date) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: duplicate exception for date %s (ids %d, %d)",
				ErrDataIntegrity, date.Format(domain.DateFormat), found.ID, exceptions[i].ID)
		}
		found = &exceptions[i]
	}

	return found, nil
}

// openSlotsForDay собирает доступные слоты на день недели и проверяет
// инварианты: валидность времени каждого слота и отсутствие пересечений
func openSlotsForDay(slots []domain.RecurringSlot, weekday time.Weekday) ([]domain.RecurringSlot, error) {
	open := make([]domain.RecurringSlot, 0)

	for _, slot := range slots {
		if slot.DayOfWeek != weekday || !slot.IsAvailable {
			continue
		}
		if err := validateSlotTimes(slot); err != nil {
			return nil, err
		}
		open = append(open, slot)
	}

	// Пересекающиеся доступные слоты - ошибка качества данных, обнаруженная
	// на этапе вычисления (валидация на записи могла быть обойдена)
	for i := 0; i < len(open); i++ {
		for j := i + 1; j < len(open); j++ {
			if open[i].StartTime.IsBefore(open[j].EndTime) && open[j].StartTime.IsBefore(open[i].EndTime) {
				return nil, fmt.Errorf("%w: overlapping available slots id=%d (%s-%s) and id=%d (%s-%s) on %s",
					ErrDataIntegrity,
					open[i].ID, open[i].StartTime, open[i].EndTime,
					open[j].ID, open[j].StartTime, open[j].EndTime,
					weekday)
			}
		}
	}

	return open, nil
}

// blockedSlotsForDay собирает блокирующие слоты на день недели
// Некорректные по времени блокировки просто игнорируются - они ничего
// не открывают, и ронять из-за них запрос смысла нет
func blockedSlotsForDay(slots []domain.RecurringSlot, weekday time.Weekday) []domain.RecurringSlot {
	blocked := make([]domain.RecurringSlot, 0)
	for _, slot := range slots {
		if slot.DayOfWeek != weekday || slot.IsAvailable {
			continue
		}
		if validateSlotTimes(slot) != nil {
			continue
		}
		blocked = append(blocked, slot)
	}
	return blocked
}

// validateSlotTimes проверяет формат времени слота и порядок границ
func validateSlotTimes(slot domain.RecurringSlot) error {
	if err := slot.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot id=%d: %v", ErrInvalidInput, slot.ID, err)
	}
	if err := slot.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot id=%d: %v", ErrInvalidInput, slot.ID, err)
	}
	if !slot.StartTime.IsBefore(slot.EndTime) {
		return fmt.Errorf("%w: slot id=%d: startTime %s must be before endTime %s",
			ErrInvalidInput, slot.ID, slot.StartTime, slot.EndTime)
	}
	return nil
}
