package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (нулевая дата, неположительная длительность, start >= end у слота)
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrDataIntegrity возвращается при нарушении инвариантов данных:
	// дубликат исключения на дату или пересекающиеся доступные слоты.
	// Движок не угадывает, какая запись авторитетна - ошибка всегда наружу
	ErrDataIntegrity = errors.New("availability: data integrity violation")
)

// OverlapError возвращается ValidateSlot, когда кандидат пересекается с
// существующим доступным слотом. Это ожидаемый результат валидации,
// а не сбой - вызывающая сторона отклоняет вставку до записи в БД
type OverlapError struct {
	DayOfWeek      string
	CandidateStart string
	CandidateEnd   string
	ExistingID     int64
	ExistingStart  string
	ExistingEnd    string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("slot %s-%s overlaps existing slot id=%d (%s-%s) on %s",
		e.CandidateStart, e.CandidateEnd, e.ExistingID, e.ExistingStart, e.ExistingEnd, e.DayOfWeek)
}

// newOverlapError собирает OverlapError из кандидата и конфликтующего слота
func newOverlapError(candidate domain.RecurringSlot, existing domain.RecurringSlot) *OverlapError {
	return &OverlapError{
		DayOfWeek:      candidate.DayOfWeek.String(),
		CandidateStart: candidate.StartTime.String(),
		CandidateEnd:   candidate.EndTime.String(),
		ExistingID:     existing.ID,
		ExistingStart:  existing.StartTime.String(),
		ExistingEnd:    existing.EndTime.String(),
	}
}
