package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/templates/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Service сервис для работы с шаблонами бронирования
type Service struct {
	templateRepo TemplateRepository
	cache        WindowsCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(templateRepo TemplateRepository, cache WindowsCache, logger Logger) *Service {
	return &Service{
		templateRepo: templateRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Create создает новый шаблон бронирования
func (s *Service) Create(ctx context.Context, req *models.CreateTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("Create: creating template for company=%d by user=%d", req.CompanyID, req.UserID)

	if err := s.validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.templateRepo.Create(ctx, req.ToDomainTemplate())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created template id=%d", created.ID)
	return models.FromDomainTemplate(created), nil
}

// Get получает шаблон по ID
// Неопубликованный шаблон виден только владельцу: остальным возвращается
// not found, чтобы не раскрывать существование шаблона
func (s *Service) Get(ctx context.Context, id int64, requesterID *int64) (*models.TemplateResponse, error) {
	s.logger.Info("Get: fetching template id=%d", id)

	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Get: template id=%d not found", id)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("Get: repository error for template id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if !tpl.IsPublished && (requesterID == nil || !tpl.IsOwnedBy(*requesterID)) {
		s.logger.Warn("Get: template id=%d is not published, hiding from requester", id)
		return nil, ErrTemplateNotFound
	}

	return models.FromDomainTemplate(tpl), nil
}

// Update применяет частичное обновление шаблона
// Доступно только владельцу; кэш окон шаблона инвалидируется
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("Update: updating template id=%d by user=%d", id, req.UserID)

	upd := req.ToDomainUpdate()
	if upd.IsEmpty() {
		s.logger.Warn("Update: empty update for template id=%d", id)
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	if err := s.validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Update: template id=%d not found", id)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("Update: repository error for template id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !tpl.IsOwnedBy(req.UserID) {
		s.logger.Warn("Update: user=%d is not the owner of template id=%d", req.UserID, id)
		return nil, ErrAccessDenied
	}

	// Дефолтные часы валидируются в паре: берём итоговое значение
	// после применения обновления
	if err := s.validateResultingHours(tpl, upd); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.templateRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("Update: repository error for template id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.InvalidateTemplate(id)
	}

	s.logger.Info("Update: successfully updated template id=%d", id)
	return models.FromDomainTemplate(updated), nil
}

// validateCreate проверяет данные запроса на создание
func (s *Service) validateCreate(req *models.CreateTemplateRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxTemplateNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxTemplateNameLen)
	}
	if err := validateDuration(req.DurationMinutes); err != nil {
		return err
	}
	if err := validateDailyBookings(req.MaxDailyBookings); err != nil {
		return err
	}
	return validateHoursPair(req.DefaultStartingHour, req.DefaultEndingHour)
}

// validateUpdate проверяет заданные поля запроса на обновление
func (s *Service) validateUpdate(req *models.UpdateTemplateRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Name != nil {
		if *req.Name == "" {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		if len(*req.Name) > domain.MaxTemplateNameLen {
			return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxTemplateNameLen)
		}
	}
	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes); err != nil {
			return err
		}
	}
	if req.MaxDailyBookings != nil {
		if err := validateDailyBookings(*req.MaxDailyBookings); err != nil {
			return err
		}
	}
	return nil
}

// validateResultingHours проверяет дефолтные часы после применения обновления
func (s *Service) validateResultingHours(tpl *domain.BookingTemplate, upd *domain.TemplateUpdate) error {
	start := tpl.DefaultStartingHour
	end := tpl.DefaultEndingHour
	if upd.DefaultStartingHour != nil {
		start = *upd.DefaultStartingHour
	}
	if upd.DefaultEndingHour != nil {
		end = *upd.DefaultEndingHour
	}
	return validateHoursPair(start, end)
}

// validateHoursPair проверяет пару дефолтных часов: либо обе границы пустые,
// либо обе валидны и start < end
func validateHoursPair(start, end types.TimeString) error {
	if start.IsZero() && end.IsZero() {
		return nil
	}
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: default hours must be set together", ErrInvalidInput)
	}
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid defaultStartingHour: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid defaultEndingHour: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: defaultStartingHour must be before defaultEndingHour", ErrInvalidInput)
	}
	return nil
}

func validateDuration(minutes int) error {
	if minutes < domain.MinDurationMinutes || minutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}

func validateDailyBookings(count int) error {
	if count < domain.MinDailyBookings || count > domain.MaxDailyBookingsCap {
		return fmt.Errorf("%w: maxDailyBookings must be between %d and %d",
			ErrInvalidInput, domain.MinDailyBookings, domain.MaxDailyBookingsCap)
	}
	return nil
}
