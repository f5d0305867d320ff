package get_bookable_windows

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение окон бронирования
type Request struct {
	TemplateID  int64     // ID шаблона бронирования
	RequesterID *int64    // ID пользователя из заголовка (nil для анонимных запросов)
	Date        time.Time // Календарная дата без времени
}

// Response модель ответа со списком окон
type Response struct {
	TemplateID      int64
	Date            time.Time
	DurationMinutes int                 // Длительность каждого окна
	Windows         []domain.TimeWindow // Упорядоченный список окон
}
