package create_recurring_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type stubTemplateRepo struct {
	tpl *domain.BookingTemplate
	err error
}

func (s *stubTemplateRepo) GetByID(_ context.Context, _ int64) (*domain.BookingTemplate, error) {
	return s.tpl, s.err
}

type stubScheduleRepo struct {
	existing []domain.RecurringSlot
	created  *domain.RecurringSlot
}

func (s *stubScheduleRepo) GetSlotsByTemplate(_ context.Context, _ int64) ([]domain.RecurringSlot, error) {
	return s.existing, nil
}

func (s *stubScheduleRepo) CreateSlot(_ context.Context, slot *domain.RecurringSlot) (*domain.RecurringSlot, error) {
	out := *slot
	out.ID = 42
	out.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.created = &out
	return &out, nil
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
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

func validRequest() *Request {
	return &Request{
		UserID:      10,
		TemplateID:  1,
		DayOfWeek:   1,
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("17:00"),
		IsAvailable: true,
	}
}

func TestExecute_CreatesSlot(t *testing.T) {
	schedule := &stubScheduleRepo{}
	tx := &inlineTxManager{}
	cache := &stubCache{}

	uc := NewUseCase(&stubTemplateRepo{tpl: ownedTemplate()}, schedule, tx, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 1, resp.DayOfWeek)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestExecute_RejectsOverlap(t *testing.T) {
	schedule := &stubScheduleRepo{
		existing: []domain.RecurringSlot{
			{
				ID:          7,
				TemplateID:  1,
				DayOfWeek:   time.Monday,
				StartTime:   types.TimeString("10:00"),
				EndTime:     types.TimeString("12:00"),
				IsAvailable: true,
			},
		},
	}
	cache := &stubCache{}

	uc := NewUseCase(&stubTemplateRepo{tpl: ownedTemplate()}, schedule, &inlineTxManager{}, cache, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotOverlap)
	assert.Nil(t, schedule.created)
	assert.Empty(t, cache.invalidated)
}

func TestExecute_AdjacentSlotsAllowed(t *testing.T) {
	schedule := &stubScheduleRepo{
		existing: []domain.RecurringSlot{
			{
				ID:          7,
				TemplateID:  1,
				DayOfWeek:   time.Monday,
				StartTime:   types.TimeString("17:00"),
				EndTime:     types.TimeString("19:00"),
				IsAvailable: true,
			},
		},
	}

	uc := NewUseCase(&stubTemplateRepo{tpl: ownedTemplate()}, schedule, &inlineTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, schedule.created)
}

func TestExecute_NotOwner(t *testing.T) {
	req := validRequest()
	req.UserID = 99

	uc := NewUseCase(&stubTemplateRepo{tpl: ownedTemplate()}, &stubScheduleRepo{}, &inlineTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_TemplateNotFound(t *testing.T) {
	uc := NewUseCase(&stubTemplateRepo{err: templateRepo.ErrTemplateNotFound}, &stubScheduleRepo{}, &inlineTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestExecute_InvalidDayOfWeek(t *testing.T) {
	req := validRequest()
	req.DayOfWeek = 7

	uc := NewUseCase(&stubTemplateRepo{tpl: ownedTemplate()}, &stubScheduleRepo{}, &inlineTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StartAfterEnd(t *testing.T) {
	req := validRequest()
	req.StartTime = types.TimeString("18:00")
	req.EndTime = types.TimeString("09:00")

	uc := NewUseCase(&stubTemplateRepo{tpl: ownedTemplate()}, &stubScheduleRepo{}, &inlineTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ScheduleLimitReached(t *testing.T) {
	existing := make([]domain.RecurringSlot, domain.MaxScheduleRecords)
	for i := range existing {
		existing[i] = domain.RecurringSlot{
			ID:          int64(i + 1),
			TemplateID:  1,
			DayOfWeek:   time.Sunday,
			StartTime:   types.TimeString("00:00"),
			EndTime:     types.TimeString("00:01"),
			IsAvailable: false,
		}
	}

	uc := NewUseCase(&stubTemplateRepo{tpl: ownedTemplate()}, &stubScheduleRepo{existing: existing}, &inlineTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleLimitReached)
}
