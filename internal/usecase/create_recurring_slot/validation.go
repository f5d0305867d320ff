package create_recurring_slot

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TemplateID <= 0 {
		return fmt.Errorf("%w: templateID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be in range 0..6, got %d", ErrInvalidInput, req.DayOfWeek)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s",
			ErrInvalidInput, req.StartTime, req.EndTime)
	}

	return nil
}

// validateScheduleLimit проверяет лимит записей расписания на шаблон
func validateScheduleLimit(existingCount int) error {
	if existingCount >= domain.MaxScheduleRecords {
		return fmt.Errorf("%w: template already has %d records", ErrScheduleLimitReached, existingCount)
	}
	return nil
}
