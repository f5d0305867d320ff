package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CreateTemplateRequest запрос на создание шаблона бронирования
type CreateTemplateRequest struct {
	UserID              int64
	CompanyID           int64
	Name                string
	DurationMinutes     int
	DefaultStartingHour types.TimeString
	DefaultEndingHour   types.TimeString
	MaxDailyBookings    int
	IsPublished         bool
}

// ToDomainTemplate конвертирует запрос в доменную модель
func (r *CreateTemplateRequest) ToDomainTemplate() *domain.BookingTemplate {
	return &domain.BookingTemplate{
		CompanyID:           r.CompanyID,
		OwnerID:             r.UserID,
		Name:                r.Name,
		DurationMinutes:     r.DurationMinutes,
		DefaultStartingHour: r.DefaultStartingHour,
		DefaultEndingHour:   r.DefaultEndingHour,
		MaxDailyBookings:    r.MaxDailyBookings,
		IsPublished:         r.IsPublished,
	}
}

// UpdateTemplateRequest запрос на частичное обновление шаблона
// nil-поле означает "не менять"
type UpdateTemplateRequest struct {
	UserID              int64
	Name                *string
	DurationMinutes     *int
	DefaultStartingHour *types.TimeString
	DefaultEndingHour   *types.TimeString
	MaxDailyBookings    *int
	IsPublished         *bool
}

// ToDomainUpdate конвертирует запрос в доменную модель частичного обновления
func (r *UpdateTemplateRequest) ToDomainUpdate() *domain.TemplateUpdate {
	return &domain.TemplateUpdate{
		Name:                r.Name,
		DurationMinutes:     r.DurationMinutes,
		DefaultStartingHour: r.DefaultStartingHour,
		DefaultEndingHour:   r.DefaultEndingHour,
		MaxDailyBookings:    r.MaxDailyBookings,
		IsPublished:         r.IsPublished,
	}
}

// TemplateResponse модель шаблона для вызывающих слоев
type TemplateResponse struct {
	ID                  int64
	CompanyID           int64
	OwnerID             int64
	Name                string
	DurationMinutes     int
	DefaultStartingHour types.TimeString
	DefaultEndingHour   types.TimeString
	MaxDailyBookings    int
	IsPublished         bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FromDomainTemplate конвертирует доменную модель в ответ сервиса
func FromDomainTemplate(tpl *domain.BookingTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:                  tpl.ID,
		CompanyID:           tpl.CompanyID,
		OwnerID:             tpl.OwnerID,
		Name:                tpl.Name,
		DurationMinutes:     tpl.DurationMinutes,
		DefaultStartingHour: tpl.DefaultStartingHour,
		DefaultEndingHour:   tpl.DefaultEndingHour,
		MaxDailyBookings:    tpl.MaxDailyBookings,
		IsPublished:         tpl.IsPublished,
		CreatedAt:           tpl.CreatedAt,
		UpdatedAt:           tpl.UpdatedAt,
	}
}
