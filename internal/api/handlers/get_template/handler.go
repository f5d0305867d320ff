package get_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/templates"
)

const (
	msgInvalidTemplateID = "некорректный ID шаблона"
	msgNotFound          = "шаблон не найден"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/templates/{templateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /templates/{id} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	// Публичный роут: X-User-ID опционален, нужен только владельцу
	// неопубликованного шаблона
	requesterID := middleware.OptionalUserID(r)

	tpl, err := h.service.Get(r.Context(), templateID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("GET /templates/{id} - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /templates/{id} - Failed to get template: template_id=%d, error=%v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /templates/{id} - Template retrieved successfully: template_id=%d", templateID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(tpl))
}
