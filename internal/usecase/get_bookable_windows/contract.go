package get_bookable_windows

import (
	"context"
	"time"

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

// WindowsCache интерфейс кэша посчитанных окон
// nil допустим, когда кэш отключен конфигурацией
type WindowsCache interface {
	Get(templateID int64, date time.Time) ([]domain.TimeWindow, bool)
	Put(templateID int64, date time.Time, windows []domain.TimeWindow)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
