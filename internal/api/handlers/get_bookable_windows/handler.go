package get_bookable_windows

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getBookableWindows "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_bookable_windows"
)

const (
	msgInvalidTemplateID = "некорректный ID шаблона"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound          = "шаблон не найден"
	msgDataInconsistent  = "расписание шаблона содержит противоречивые данные"
)

type Handler struct {
	useCase GetBookableWindowsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableWindowsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/templates/{templateId}/windows?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /templates/{id}/windows - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /templates/{id}/windows - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	requesterID := middleware.OptionalUserID(r)

	result, err := h.useCase.Execute(r.Context(), &getBookableWindows.Request{
		TemplateID:  templateID,
		RequesterID: requesterID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookableWindows.ErrTemplateNotFound):
			h.logger.Warn("GET /templates/{id}/windows - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getBookableWindows.ErrInvalidInput):
			h.logger.Warn("GET /templates/{id}/windows - Invalid input: template_id=%d, error=%v", templateID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getBookableWindows.ErrDataInconsistent):
			h.logger.Error("GET /templates/{id}/windows - Inconsistent schedule: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondError(w, http.StatusConflict, msgDataInconsistent)

		default:
			h.logger.Error("GET /templates/{id}/windows - Failed to get windows: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /templates/{id}/windows - Windows retrieved: template_id=%d, date=%s, count=%d",
		templateID, result.Date.Format(domain.DateFormat), len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
