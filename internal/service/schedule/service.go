package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// Service сервис для управления расписанием шаблона:
// удаление слотов, исключения дат, чтение полного расписания.
// Создание слота живет в usecase/create_recurring_slot - ему нужна
// сериализуемая транзакция для защиты от гонки пересекающихся вставок
type Service struct {
	scheduleRepo ScheduleRepository
	templateRepo TemplateRepository
	cache        WindowsCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	templateRepo TemplateRepository,
	cache WindowsCache,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		templateRepo: templateRepo,
		cache:        cache,
		logger:       logger,
	}
}

// GetSchedule возвращает полное расписание шаблона: слоты и исключения
// Неопубликованный шаблон виден только владельцу
func (s *Service) GetSchedule(ctx context.Context, templateID int64, requesterID *int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for template=%d", templateID)

	tpl, err := s.getTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if !tpl.IsPublished && (requesterID == nil || !tpl.IsOwnedBy(*requesterID)) {
		s.logger.Warn("GetSchedule: template id=%d is not published, hiding from requester", templateID)
		return nil, ErrTemplateNotFound
	}

	slots, err := s.scheduleRepo.GetSlotsByTemplate(ctx, templateID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get slots for template=%d: %v", templateID, err)
		return nil, fmt.Errorf("%w: GetSchedule - failed to get slots: %v", ErrInternal, err)
	}

	exceptions, err := s.scheduleRepo.GetExceptionsByTemplate(ctx, templateID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get exceptions for template=%d: %v", templateID, err)
		return nil, fmt.Errorf("%w: GetSchedule - failed to get exceptions: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: template=%d has %d slots and %d exceptions",
		templateID, len(slots), len(exceptions))
	return models.FromDomainSchedule(templateID, slots, exceptions), nil
}

// DeleteSlot удаляет повторяющийся слот шаблона
// Доступно только владельцу; кэш окон шаблона инвалидируется
func (s *Service) DeleteSlot(ctx context.Context, templateID, slotID, userID int64) error {
	s.logger.Info("DeleteSlot: deleting slot id=%d of template=%d by user=%d", slotID, templateID, userID)

	if err := s.checkOwnership(ctx, templateID, userID); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteSlot(ctx, templateID, slotID); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%d not found in template=%d", slotID, templateID)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: repository error: %v", err)
		return fmt.Errorf("%w: DeleteSlot - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.InvalidateTemplate(templateID)
	}

	s.logger.Info("DeleteSlot: successfully deleted slot id=%d", slotID)
	return nil
}

// CreateException создает исключение на дату (полнодневный override)
// Доступно только владельцу; кэш окон шаблона инвалидируется
func (s *Service) CreateException(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: creating exception for template=%d date=%s by user=%d",
		req.TemplateID, req.Date.Format(domain.DateFormat), req.UserID)

	if req.Date.IsZero() {
		s.logger.Warn("CreateException: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.checkOwnership(ctx, req.TemplateID, req.UserID); err != nil {
		return nil, err
	}

	// Обнуляем временную часть - исключение относится к календарной дате
	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	created, err := s.scheduleRepo.CreateException(ctx, &domain.DateException{
		TemplateID:    req.TemplateID,
		ExceptionDate: date,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDuplicateException) {
			s.logger.Warn("CreateException: exception already exists for template=%d date=%s",
				req.TemplateID, date.Format(domain.DateFormat))
			return nil, ErrDuplicateException
		}
		s.logger.Error("CreateException: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.InvalidateTemplate(req.TemplateID)
	}

	s.logger.Info("CreateException: successfully created exception id=%d", created.ID)
	return models.FromDomainException(created), nil
}

// DeleteException удаляет исключение шаблона
// Доступно только владельцу; кэш окон шаблона инвалидируется
func (s *Service) DeleteException(ctx context.Context, templateID, exceptionID, userID int64) error {
	s.logger.Info("DeleteException: deleting exception id=%d of template=%d by user=%d",
		exceptionID, templateID, userID)

	if err := s.checkOwnership(ctx, templateID, userID); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteException(ctx, templateID, exceptionID); err != nil {
		if errors.Is(err, scheduleRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%d not found in template=%d", exceptionID, templateID)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error: %v", err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.InvalidateTemplate(templateID)
	}

	s.logger.Info("DeleteException: successfully deleted exception id=%d", exceptionID)
	return nil
}

// getTemplate получает шаблон, маппя not found на ошибку сервиса
func (s *Service) getTemplate(ctx context.Context, templateID int64) (*domain.BookingTemplate, error) {
	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("template id=%d not found", templateID)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("failed to get template id=%d: %v", templateID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}
	return tpl, nil
}

// checkOwnership проверяет, что шаблон существует и принадлежит пользователю
func (s *Service) checkOwnership(ctx context.Context, templateID, userID int64) error {
	tpl, err := s.getTemplate(ctx, templateID)
	if err != nil {
		return err
	}
	if !tpl.IsOwnedBy(userID) {
		s.logger.Warn("user=%d is not the owner of template id=%d", userID, templateID)
		return ErrAccessDenied
	}
	return nil
}
