package create_template

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/templates/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CreateTemplateRequest HTTP request model
type CreateTemplateRequest struct {
	CompanyID           int64  `json:"companyId"`
	Name                string `json:"name"`
	DurationMinutes     *int   `json:"durationMinutes,omitempty"` // по умолчанию 60
	DefaultStartingHour string `json:"defaultStartingHour,omitempty"`
	DefaultEndingHour   string `json:"defaultEndingHour,omitempty"`
	MaxDailyBookings    int    `json:"maxDailyBookings"`
	IsPublished         bool   `json:"isPublished"`
}

// TemplateResponse HTTP response model
type TemplateResponse struct {
	ID                  int64  `json:"id"`
	CompanyID           int64  `json:"companyId"`
	OwnerID             int64  `json:"ownerId"`
	Name                string `json:"name"`
	DurationMinutes     int    `json:"durationMinutes"`
	DefaultStartingHour string `json:"defaultStartingHour,omitempty"`
	DefaultEndingHour   string `json:"defaultEndingHour,omitempty"`
	MaxDailyBookings    int    `json:"maxDailyBookings"`
	IsPublished         bool   `json:"isPublished"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTemplateRequest) ToServiceRequest(userID int64) *models.CreateTemplateRequest {
	duration := domain.DefaultDurationMinutes
	if r.DurationMinutes != nil {
		duration = *r.DurationMinutes
	}

	return &models.CreateTemplateRequest{
		UserID:              userID,
		CompanyID:           r.CompanyID,
		Name:                r.Name,
		DurationMinutes:     duration,
		DefaultStartingHour: types.TimeString(r.DefaultStartingHour),
		DefaultEndingHour:   types.TimeString(r.DefaultEndingHour),
		MaxDailyBookings:    r.MaxDailyBookings,
		IsPublished:         r.IsPublished,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.TemplateResponse) *TemplateResponse {
	return &TemplateResponse{
		ID:                  resp.ID,
		CompanyID:           resp.CompanyID,
		OwnerID:             resp.OwnerID,
		Name:                resp.Name,
		DurationMinutes:     resp.DurationMinutes,
		DefaultStartingHour: resp.DefaultStartingHour.String(),
		DefaultEndingHour:   resp.DefaultEndingHour.String(),
		MaxDailyBookings:    resp.MaxDailyBookings,
		IsPublished:         resp.IsPublished,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}
}
