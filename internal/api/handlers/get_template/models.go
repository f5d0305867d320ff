package get_template

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/templates/models"
)

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
