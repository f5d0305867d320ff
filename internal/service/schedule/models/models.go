package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// SlotResponse модель повторяющегося слота для вызывающих слоев
type SlotResponse struct {
	ID          int64
	TemplateID  int64
	DayOfWeek   int // 0 = воскресенье ... 6 = суббота
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
}

// FromDomainSlot конвертирует доменную модель слота в ответ сервиса
func FromDomainSlot(slot *domain.RecurringSlot) *SlotResponse {
	return &SlotResponse{
		ID:          slot.ID,
		TemplateID:  slot.TemplateID,
		DayOfWeek:   int(slot.DayOfWeek),
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		IsAvailable: slot.IsAvailable,
		CreatedAt:   slot.CreatedAt,
	}
}

// CreateExceptionRequest запрос на создание исключения на дату
type CreateExceptionRequest struct {
	UserID      int64
	TemplateID  int64
	Date        time.Time
	IsAvailable bool
}

// ExceptionResponse модель исключения для вызывающих слоев
type ExceptionResponse struct {
	ID            int64
	TemplateID    int64
	ExceptionDate time.Time
	IsAvailable   bool
	CreatedAt     time.Time
}

// FromDomainException конвертирует доменную модель исключения в ответ сервиса
func FromDomainException(exc *domain.DateException) *ExceptionResponse {
	return &ExceptionResponse{
		ID:            exc.ID,
		TemplateID:    exc.TemplateID,
		ExceptionDate: exc.ExceptionDate,
		IsAvailable:   exc.IsAvailable,
		CreatedAt:     exc.CreatedAt,
	}
}

// ScheduleResponse полное расписание шаблона: слоты и исключения
type ScheduleResponse struct {
	TemplateID int64
	Slots      []SlotResponse
	Exceptions []ExceptionResponse
}

// FromDomainSchedule собирает ответ из доменных моделей
func FromDomainSchedule(templateID int64, slots []domain.RecurringSlot, exceptions []domain.DateException) *ScheduleResponse {
	slotResponses := make([]SlotResponse, len(slots))
	for i := range slots {
		slotResponses[i] = *FromDomainSlot(&slots[i])
	}

	exceptionResponses := make([]ExceptionResponse, len(exceptions))
	for i := range exceptions {
		exceptionResponses[i] = *FromDomainException(&exceptions[i])
	}

	return &ScheduleResponse{
		TemplateID: templateID,
		Slots:      slotResponses,
		Exceptions: exceptionResponses,
	}
}
