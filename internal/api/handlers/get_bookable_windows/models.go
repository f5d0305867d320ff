package get_bookable_windows

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getBookableWindows "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_bookable_windows"
)

// WindowResponse HTTP model окна бронирования
type WindowResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WindowsResponse HTTP response model
type WindowsResponse struct {
	TemplateID      int64            `json:"templateId"`
	Date            string           `json:"date"`
	DurationMinutes int              `json:"durationMinutes"`
	Windows         []WindowResponse `json:"windows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookableWindows.Response) *WindowsResponse {
	windows := make([]WindowResponse, len(resp.Windows))
	for i, w := range resp.Windows {
		windows[i] = WindowResponse{
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		}
	}

	return &WindowsResponse{
		TemplateID:      resp.TemplateID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Windows:         windows,
	}
}
