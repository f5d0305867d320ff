package schedule

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetSlotsByTemplate(ctx context.Context, templateID int64) ([]domain.RecurringSlot, error)
	DeleteSlot(ctx context.Context, templateID, slotID int64) error
	CreateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error)
	GetExceptionsByTemplate(ctx context.Context, templateID int64) ([]domain.DateException, error)
	DeleteException(ctx context.Context, templateID, exceptionID int64) error
}

// TemplateRepository интерфейс репозитория шаблонов
type TemplateRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingTemplate, error)
}

// WindowsCache интерфейс инвалидации кэша окон
// nil допустим, когда кэш отключен конфигурацией
type WindowsCache interface {
	InvalidateTemplate(templateID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
