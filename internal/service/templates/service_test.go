package templates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/templates/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type stubRepo struct {
	tpl       *domain.BookingTemplate
	getErr    error
	created   *domain.BookingTemplate
	updated   *domain.TemplateUpdate
	updatedID int64
}

func (s *stubRepo) Create(_ context.Context, tpl *domain.BookingTemplate) (*domain.BookingTemplate, error) {
	out := *tpl
	out.ID = 1
	s.created = &out
	return &out, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.BookingTemplate, error) {
	return s.tpl, s.getErr
}

func (s *stubRepo) Update(_ context.Context, id int64, upd *domain.TemplateUpdate) (*domain.BookingTemplate, error) {
	s.updatedID = id
	s.updated = upd
	out := *s.tpl
	if upd.Name != nil {
		out.Name = *upd.Name
	}
	if upd.DurationMinutes != nil {
		out.DurationMinutes = *upd.DurationMinutes
	}
	return &out, nil
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

func storedTemplate() *domain.BookingTemplate {
	return &domain.BookingTemplate{
		ID:              1,
		CompanyID:       5,
		OwnerID:         10,
		Name:            "Базовый шаблон",
		DurationMinutes: 60,
		IsPublished:     true,
	}
}

func createRequest() *models.CreateTemplateRequest {
	return &models.CreateTemplateRequest{
		UserID:          10,
		CompanyID:       5,
		Name:            "Базовый шаблон",
		DurationMinutes: 60,
		IsPublished:     true,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.OwnerID)
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(10), repo.created.OwnerID)
}

func TestCreate_DurationOutOfBounds(t *testing.T) {
	svc := NewService(&stubRepo{}, nil, nopLogger{})

	req := createRequest()
	req.DurationMinutes = 3
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.DurationMinutes = 500
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DefaultHoursMustBePaired(t *testing.T) {
	svc := NewService(&stubRepo{}, nil, nopLogger{})

	req := createRequest()
	req.DefaultStartingHour = types.TimeString("09:00")
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DefaultHoursOrdered(t *testing.T) {
	svc := NewService(&stubRepo{}, nil, nopLogger{})

	req := createRequest()
	req.DefaultStartingHour = types.TimeString("18:00")
	req.DefaultEndingHour = types.TimeString("09:00")
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGet_PublishedVisibleToAnonymous(t *testing.T) {
	svc := NewService(&stubRepo{tpl: storedTemplate()}, nil, nopLogger{})

	resp, err := svc.Get(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "Базовый шаблон", resp.Name)
}

func TestGet_UnpublishedHiddenFromStranger(t *testing.T) {
	tpl := storedTemplate()
	tpl.IsPublished = false
	svc := NewService(&stubRepo{tpl: tpl}, nil, nopLogger{})

	_, err := svc.Get(context.Background(), 1, ptr.Ptr(int64(99)))
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = svc.Get(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestGet_UnpublishedVisibleToOwner(t *testing.T) {
	tpl := storedTemplate()
	tpl.IsPublished = false
	svc := NewService(&stubRepo{tpl: tpl}, nil, nopLogger{})

	resp, err := svc.Get(context.Background(), 1, ptr.Ptr(int64(10)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{getErr: templateRepo.ErrTemplateNotFound}, nil, nopLogger{})

	_, err := svc.Get(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestUpdate_Success(t *testing.T) {
	repo := &stubRepo{tpl: storedTemplate()}
	cache := &stubCache{}
	svc := NewService(repo, cache, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateTemplateRequest{
		UserID: 10,
		Name:   ptr.Ptr("Новое имя"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Новое имя", resp.Name)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestUpdate_EmptyRequestRejected(t *testing.T) {
	svc := NewService(&stubRepo{tpl: storedTemplate()}, nil, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateTemplateRequest{UserID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotOwner(t *testing.T) {
	repo := &stubRepo{tpl: storedTemplate()}
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateTemplateRequest{
		UserID: 99,
		Name:   ptr.Ptr("Чужое имя"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestUpdate_ResultingHoursValidated(t *testing.T) {
	tpl := storedTemplate()
	tpl.DefaultStartingHour = types.TimeString("09:00")
	tpl.DefaultEndingHour = types.TimeString("17:00")
	svc := NewService(&stubRepo{tpl: tpl}, nil, nopLogger{})

	// Итоговая пара 18:00-17:00 невалидна
	_, err := svc.Update(context.Background(), 1, &models.UpdateTemplateRequest{
		UserID:              10,
		DefaultStartingHour: ptr.Ptr(types.TimeString("18:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
