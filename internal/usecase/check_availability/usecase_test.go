package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var testMonday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

type stubTemplateRepo struct {
	tpl *domain.BookingTemplate
	err error
}

func (s *stubTemplateRepo) GetByID(_ context.Context, _ int64) (*domain.BookingTemplate, error) {
	return s.tpl, s.err
}

type stubScheduleRepo struct {
	slots      []domain.RecurringSlot
	exceptions []domain.DateException
	err        error
}

func (s *stubScheduleRepo) GetSlotsByTemplate(_ context.Context, _ int64) ([]domain.RecurringSlot, error) {
	return s.slots, s.err
}

func (s *stubScheduleRepo) GetExceptionsByTemplate(_ context.Context, _ int64) ([]domain.DateException, error) {
	return s.exceptions, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func publishedTemplate() *domain.BookingTemplate {
	return &domain.BookingTemplate{
		ID:              1,
		OwnerID:         10,
		DurationMinutes: 60,
		IsPublished:     true,
	}
}

func mondaySlot() domain.RecurringSlot {
	return domain.RecurringSlot{
		ID:          1,
		TemplateID:  1,
		DayOfWeek:   time.Monday,
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("17:00"),
		IsAvailable: true,
	}
}

func TestExecute_AvailableDay(t *testing.T) {
	uc := NewUseCase(
		&stubTemplateRepo{tpl: publishedTemplate()},
		&stubScheduleRepo{slots: []domain.RecurringSlot{mondaySlot()}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TemplateID: 1, Date: testMonday})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, int64(1), resp.TemplateID)
}

func TestExecute_ClosingExceptionWins(t *testing.T) {
	uc := NewUseCase(
		&stubTemplateRepo{tpl: publishedTemplate()},
		&stubScheduleRepo{
			slots: []domain.RecurringSlot{mondaySlot()},
			exceptions: []domain.DateException{
				{ID: 1, TemplateID: 1, ExceptionDate: testMonday, IsAvailable: false},
			},
		},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TemplateID: 1, Date: testMonday})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_TemplateNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubTemplateRepo{err: templateRepo.ErrTemplateNotFound},
		&stubScheduleRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{TemplateID: 1, Date: testMonday})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestExecute_UnpublishedHiddenFromStranger(t *testing.T) {
	tpl := publishedTemplate()
	tpl.IsPublished = false

	uc := NewUseCase(
		&stubTemplateRepo{tpl: tpl},
		&stubScheduleRepo{slots: []domain.RecurringSlot{mondaySlot()}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{TemplateID: 1, RequesterID: ptr.Ptr(int64(99)), Date: testMonday})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestExecute_UnpublishedVisibleToOwner(t *testing.T) {
	tpl := publishedTemplate()
	tpl.IsPublished = false

	uc := NewUseCase(
		&stubTemplateRepo{tpl: tpl},
		&stubScheduleRepo{slots: []domain.RecurringSlot{mondaySlot()}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TemplateID: 1, RequesterID: ptr.Ptr(int64(10)), Date: testMonday})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_DuplicateExceptionsReported(t *testing.T) {
	uc := NewUseCase(
		&stubTemplateRepo{tpl: publishedTemplate()},
		&stubScheduleRepo{
			slots: []domain.RecurringSlot{mondaySlot()},
			exceptions: []domain.DateException{
				{ID: 1, TemplateID: 1, ExceptionDate: testMonday, IsAvailable: false},
				{ID: 2, TemplateID: 1, ExceptionDate: testMonday, IsAvailable: true},
			},
		},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{TemplateID: 1, Date: testMonday})
	assert.ErrorIs(t, err, ErrDataInconsistent)
}

func TestExecute_ValidationRejectsBadTemplateID(t *testing.T) {
	uc := NewUseCase(&stubTemplateRepo{}, &stubScheduleRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TemplateID: 0, Date: testMonday})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
