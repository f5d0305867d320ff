package create_recurring_slot

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на создание повторяющегося слота
type Request struct {
	UserID      int64            // ID пользователя из заголовка
	TemplateID  int64            // ID шаблона бронирования
	DayOfWeek   int              // 0 = воскресенье ... 6 = суббота
	StartTime   types.TimeString // Начало интервала, "HH:MM"
	EndTime     types.TimeString // Конец интервала, "HH:MM"
	IsAvailable bool             // true = открывает день, false = блокирует интервал
}

// Response модель ответа с созданным слотом
type Response struct {
	ID          int64
	TemplateID  int64
	DayOfWeek   int
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
}
