package get_template_schedule

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// SlotResponse HTTP model повторяющегося слота
type SlotResponse struct {
	ID          int64  `json:"id"`
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	CreatedAt   string `json:"createdAt"`
}

// ExceptionResponse HTTP model исключения на дату
type ExceptionResponse struct {
	ID            int64  `json:"id"`
	ExceptionDate string `json:"exceptionDate"`
	IsAvailable   bool   `json:"isAvailable"`
	CreatedAt     string `json:"createdAt"`
}

// ScheduleResponse HTTP model полного расписания шаблона
type ScheduleResponse struct {
	TemplateID int64               `json:"templateId"`
	Slots      []SlotResponse      `json:"slots"`
	Exceptions []ExceptionResponse `json:"exceptions"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleResponse) *ScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			ID:          s.ID,
			DayOfWeek:   s.DayOfWeek,
			StartTime:   s.StartTime.String(),
			EndTime:     s.EndTime.String(),
			IsAvailable: s.IsAvailable,
			CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		}
	}

	exceptions := make([]ExceptionResponse, len(resp.Exceptions))
	for i, e := range resp.Exceptions {
		exceptions[i] = ExceptionResponse{
			ID:            e.ID,
			ExceptionDate: e.ExceptionDate.Format(domain.DateFormat),
			IsAvailable:   e.IsAvailable,
			CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ScheduleResponse{
		TemplateID: resp.TemplateID,
		Slots:      slots,
		Exceptions: exceptions,
	}
}
