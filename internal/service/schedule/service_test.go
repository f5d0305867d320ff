package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type stubScheduleRepo struct {
	slots        []domain.RecurringSlot
	exceptions   []domain.DateException
	deleteErr    error
	createErr    error
	createdExc   *domain.DateException
	deletedSlots []int64
	deletedExcs  []int64
}

func (s *stubScheduleRepo) GetSlotsByTemplate(_ context.Context, _ int64) ([]domain.RecurringSlot, error) {
	return s.slots, nil
}

func (s *stubScheduleRepo) DeleteSlot(_ context.Context, _, slotID int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedSlots = append(s.deletedSlots, slotID)
	return nil
}

func (s *stubScheduleRepo) CreateException(_ context.Context, exc *domain.DateException) (*domain.DateException, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *exc
	out.ID = 7
	s.createdExc = &out
	return &out, nil
}

func (s *stubScheduleRepo) GetExceptionsByTemplate(_ context.Context, _ int64) ([]domain.DateException, error) {
	return s.exceptions, nil
}

func (s *stubScheduleRepo) DeleteException(_ context.Context, _, exceptionID int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedExcs = append(s.deletedExcs, exceptionID)
	return nil
}

type stubTemplateRepo struct {
	tpl *domain.BookingTemplate
	err error
}

func (s *stubTemplateRepo) GetByID(_ context.Context, _ int64) (*domain.BookingTemplate, error) {
	return s.tpl, s.err
}

type stubCache struct {
	invalidated []int64
}

func (c *stubCache) InvalidateTemplate(templateID int64) {
	c.invalidated = append(c.invalidated, templateID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ownedTemplate() *domain.BookingTemplate {
	return &domain.BookingTemplate{ID: 1, OwnerID: 10, DurationMinutes: 60, IsPublished: true}
}

func TestGetSchedule_ReturnsSlotsAndExceptions(t *testing.T) {
	repo := &stubScheduleRepo{
		slots: []domain.RecurringSlot{
			{ID: 1, TemplateID: 1, DayOfWeek: time.Monday, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("17:00"), IsAvailable: true},
		},
		exceptions: []domain.DateException{
			{ID: 2, TemplateID: 1, ExceptionDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), IsAvailable: false},
		},
	}

	svc := NewService(repo, &stubTemplateRepo{tpl: ownedTemplate()}, nil, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	require.Len(t, resp.Exceptions, 1)
	assert.Equal(t, 1, resp.Slots[0].DayOfWeek)
	assert.False(t, resp.Exceptions[0].IsAvailable)
}

func TestGetSchedule_UnpublishedHiddenFromStranger(t *testing.T) {
	tpl := ownedTemplate()
	tpl.IsPublished = false

	svc := NewService(&stubScheduleRepo{}, &stubTemplateRepo{tpl: tpl}, nil, nopLogger{})

	_, err := svc.GetSchedule(context.Background(), 1, ptr.Ptr(int64(99)))
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	resp, err := svc.GetSchedule(context.Background(), 1, ptr.Ptr(int64(10)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TemplateID)
}

func TestDeleteSlot_Success(t *testing.T) {
	repo := &stubScheduleRepo{}
	cache := &stubCache{}
	svc := NewService(repo, &stubTemplateRepo{tpl: ownedTemplate()}, cache, nopLogger{})

	err := svc.DeleteSlot(context.Background(), 1, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deletedSlots)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestDeleteSlot_NotOwner(t *testing.T) {
	repo := &stubScheduleRepo{}
	svc := NewService(repo, &stubTemplateRepo{tpl: ownedTemplate()}, nil, nopLogger{})

	err := svc.DeleteSlot(context.Background(), 1, 5, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deletedSlots)
}

func TestDeleteSlot_NotFound(t *testing.T) {
	repo := &stubScheduleRepo{deleteErr: scheduleRepo.ErrSlotNotFound}
	svc := NewService(repo, &stubTemplateRepo{tpl: ownedTemplate()}, nil, nopLogger{})

	err := svc.DeleteSlot(context.Background(), 1, 5, 10)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateException_NormalizesDate(t *testing.T) {
	repo := &stubScheduleRepo{}
	cache := &stubCache{}
	svc := NewService(repo, &stubTemplateRepo{tpl: ownedTemplate()}, cache, nopLogger{})

	resp, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		UserID:      10,
		TemplateID:  1,
		Date:        time.Date(2025, 6, 2, 15, 30, 45, 0, time.UTC),
		IsAvailable: false,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), resp.ExceptionDate)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestCreateException_Duplicate(t *testing.T) {
	repo := &stubScheduleRepo{createErr: scheduleRepo.ErrDuplicateException}
	svc := NewService(repo, &stubTemplateRepo{tpl: ownedTemplate()}, nil, nopLogger{})

	_, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		UserID:     10,
		TemplateID: 1,
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDuplicateException)
}

func TestCreateException_TemplateNotFound(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, &stubTemplateRepo{err: templateRepo.ErrTemplateNotFound}, nil, nopLogger{})

	_, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		UserID:     10,
		TemplateID: 1,
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestDeleteException_Success(t *testing.T) {
	repo := &stubScheduleRepo{}
	cache := &stubCache{}
	svc := NewService(repo, &stubTemplateRepo{tpl: ownedTemplate()}, cache, nopLogger{})

	err := svc.DeleteException(context.Background(), 1, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, repo.deletedExcs)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestDeleteException_NotFound(t *testing.T) {
	repo := &stubScheduleRepo{deleteErr: scheduleRepo.ErrExceptionNotFound}
	svc := NewService(repo, &stubTemplateRepo{tpl: ownedTemplate()}, nil, nopLogger{})

	err := svc.DeleteException(context.Background(), 1, 3, 10)
	assert.ErrorIs(t, err, ErrExceptionNotFound)
}
