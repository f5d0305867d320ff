package get_day_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
)

const (
	msgInvalidTemplateID = "некорректный ID шаблона"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound          = "шаблон не найден"
	msgDataInconsistent  = "расписание шаблона содержит противоречивые данные"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/templates/{templateId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /templates/{id}/availability - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /templates/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	requesterID := middleware.OptionalUserID(r)

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		TemplateID:  templateID,
		RequesterID: requesterID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrTemplateNotFound):
			h.logger.Warn("GET /templates/{id}/availability - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /templates/{id}/availability - Invalid input: template_id=%d, error=%v", templateID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, checkAvailability.ErrDataInconsistent):
			h.logger.Error("GET /templates/{id}/availability - Inconsistent schedule: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondError(w, http.StatusConflict, msgDataInconsistent)

		default:
			h.logger.Error("GET /templates/{id}/availability - Failed to check availability: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /templates/{id}/availability - Availability checked: template_id=%d, date=%s, available=%t",
		templateID, result.Date.Format(domain.DateFormat), result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
