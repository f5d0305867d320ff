package create_recurring_slot

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
	CreateSlot(ctx context.Context, slot *domain.RecurringSlot) (*domain.RecurringSlot, error)
}

// TransactionManager интерфейс менеджера сериализуемых транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
