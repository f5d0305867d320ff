package create_date_exception

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// CreateExceptionRequest HTTP request model
type CreateExceptionRequest struct {
	Date        string `json:"date"` // "2025-06-02"
	IsAvailable bool   `json:"isAvailable"`
}

// ExceptionResponse HTTP response model
type ExceptionResponse struct {
	ID            int64  `json:"id"`
	TemplateID    int64  `json:"templateId"`
	ExceptionDate string `json:"exceptionDate"`
	IsAvailable   bool   `json:"isAvailable"`
	CreatedAt     string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateExceptionRequest) ToServiceRequest(userID, templateID int64) (*models.CreateExceptionRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateExceptionRequest{
		UserID:      userID,
		TemplateID:  templateID,
		Date:        date,
		IsAvailable: r.IsAvailable,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ExceptionResponse) *ExceptionResponse {
	return &ExceptionResponse{
		ID:            resp.ID,
		TemplateID:    resp.TemplateID,
		ExceptionDate: resp.ExceptionDate.Format(domain.DateFormat),
		IsAvailable:   resp.IsAvailable,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
