package availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ValidateSlot проверяет кандидата перед записью в БД.
//
// Возвращает ErrInvalidInput при некорректных границах времени и
// *OverlapError, если кандидат пересекается с существующим доступным слотом
// на том же дне недели. Пересечение: existing.start < candidate.end И
// candidate.start < existing.end; граничащие интервалы не пересекаются.
//
// Функция ничего не изменяет - запись остаётся за слоем хранения.
func ValidateSlot(candidate domain.RecurringSlot, existing []domain.RecurringSlot) error {
	if err := validateSlotTimes(candidate); err != nil {
		return err
	}

	for _, slot := range existing {
		if !slot.IsAvailable {
			continue
		}
		if slot.Overlaps(candidate.DayOfWeek, candidate.StartTime, candidate.EndTime) {
			return newOverlapError(candidate, slot)
		}
	}

	return nil
}
