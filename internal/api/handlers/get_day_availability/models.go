package get_day_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TemplateID int64  `json:"templateId"`
	Date       string `json:"date"`
	Available  bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		TemplateID: resp.TemplateID,
		Date:       resp.Date.Format(domain.DateFormat),
		Available:  resp.Available,
	}
}
