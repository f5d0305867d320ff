package create_recurring_slot

import (
	"time"

	createRecurringSlot "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_recurring_slot"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "17:00"
	IsAvailable *bool  `json:"isAvailable,omitempty"` // по умолчанию true
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          int64  `json:"id"`
	TemplateID  int64  `json:"templateId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSlotRequest) ToUseCaseRequest(userID, templateID int64) *createRecurringSlot.Request {
	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}

	return &createRecurringSlot.Request{
		UserID:      userID,
		TemplateID:  templateID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   types.TimeString(r.StartTime),
		EndTime:     types.TimeString(r.EndTime),
		IsAvailable: isAvailable,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRecurringSlot.Response) *SlotResponse {
	return &SlotResponse{
		ID:          resp.ID,
		TemplateID:  resp.TemplateID,
		DayOfWeek:   resp.DayOfWeek,
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		IsAvailable: resp.IsAvailable,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
