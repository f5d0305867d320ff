package templates

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.BookingTemplate) (*domain.BookingTemplate, error)
	GetByID(ctx context.Context, id int64) (*domain.BookingTemplate, error)
	Update(ctx context.Context, id int64, upd *domain.TemplateUpdate) (*domain.BookingTemplate, error)
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
