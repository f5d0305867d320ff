package template

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func templateRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "company_id", "owner_id", "name", "duration_minutes",
		"default_starting_hour", "default_ending_hour", "max_daily_bookings",
		"is_published", "created_at", "updated_at",
	})
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO booking_templates").
		WithArgs(int64(5), int64(10), "Базовый шаблон", 60, types.TimeString("09:00"), types.TimeString("17:00"), 0, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), testTime, testTime))

	created, err := repo.Create(context.Background(), &domain.BookingTemplate{
		CompanyID:           5,
		OwnerID:             10,
		Name:                "Базовый шаблон",
		DurationMinutes:     60,
		DefaultStartingHour: types.TimeString("09:00"),
		DefaultEndingHour:   types.TimeString("17:00"),
		IsPublished:         true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, testTime, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_WithoutDefaultHours(t *testing.T) {
	repo, mock := newMock(t)

	// Незаданные часы уходят в БД пустыми строками
	mock.ExpectQuery("INSERT INTO booking_templates").
		WithArgs(int64(5), int64(10), "Без дефолтных часов", 30, types.TimeString(""), types.TimeString(""), 0, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(2), testTime, testTime))

	created, err := repo.Create(context.Background(), &domain.BookingTemplate{
		CompanyID:       5,
		OwnerID:         10,
		Name:            "Без дефолтных часов",
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_WithoutDefaultHours(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM booking_templates").
		WithArgs(int64(2)).
		WillReturnRows(templateRows().
			AddRow(int64(2), int64(5), int64(10), "Без дефолтных часов", 30,
				"", "", 0, false, testTime, testTime))

	tpl, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, tpl.DefaultStartingHour.IsZero())
	assert.True(t, tpl.DefaultEndingHour.IsZero())
	assert.False(t, tpl.HasDefaultHours())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM booking_templates").
		WithArgs(int64(1)).
		WillReturnRows(templateRows().
			AddRow(int64(1), int64(5), int64(10), "Базовый шаблон", 60,
				"09:00", "17:00", 3, true, testTime, testTime))

	tpl, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), tpl.CompanyID)
	assert.Equal(t, types.TimeString("09:00"), tpl.DefaultStartingHour)
	assert.Equal(t, 3, tpl.MaxDailyBookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM booking_templates").
		WithArgs(int64(99)).
		WillReturnRows(templateRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("UPDATE booking_templates SET").
		WithArgs("Новое имя", 90, int64(1)).
		WillReturnRows(templateRows().
			AddRow(int64(1), int64(5), int64(10), "Новое имя", 90,
				"", "", 0, true, testTime, testTime))

	updated, err := repo.Update(context.Background(), 1, &domain.TemplateUpdate{
		Name:            ptr.Ptr("Новое имя"),
		DurationMinutes: ptr.Ptr(90),
	})
	require.NoError(t, err)
	assert.Equal(t, "Новое имя", updated.Name)
	assert.Equal(t, 90, updated.DurationMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("UPDATE booking_templates SET").
		WithArgs(false, int64(99)).
		WillReturnRows(templateRows())

	_, err := repo.Update(context.Background(), 99, &domain.TemplateUpdate{
		IsPublished: ptr.Ptr(false),
	})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
