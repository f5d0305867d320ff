package check_availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов
type TemplateRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingTemplate, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetSlotsByTemplate(ctx context.Context, templateID int64) ([]domain.RecurringSlot, error)
	GetExceptionsByTemplate(ctx context.Context, templateID int64) ([]domain.DateException, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
