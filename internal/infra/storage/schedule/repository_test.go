package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestCreateSlot(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO recurring_slots").
		WithArgs(int64(1), 1, types.TimeString("09:00"), types.TimeString("17:00"), true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), testTime))

	created, err := repo.CreateSlot(context.Background(), &domain.RecurringSlot{
		TemplateID:  1,
		DayOfWeek:   time.Monday,
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("17:00"),
		IsAvailable: true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, testTime, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSlotsByTemplate(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{
		"id", "template_id", "day_of_week", "start_time", "end_time", "is_available", "created_at",
	}).
		AddRow(int64(1), int64(1), 1, "09:00", "12:00", true, testTime).
		AddRow(int64(2), int64(1), 1, "14:00", "18:00", true, testTime)

	mock.ExpectQuery("SELECT .+ FROM recurring_slots").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	slots, err := repo.GetSlotsByTemplate(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, time.Monday, slots[0].DayOfWeek)
	assert.Equal(t, types.TimeString("14:00"), slots[1].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSlotsByTemplate_Empty(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM recurring_slots").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "template_id", "day_of_week", "start_time", "end_time", "is_available", "created_at",
		}))

	slots, err := repo.GetSlotsByTemplate(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSlot(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM recurring_slots").
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteSlot(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSlot_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM recurring_slots").
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteSlot(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateException(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO date_exceptions").
		WithArgs(int64(1), testDate, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), testTime))

	created, err := repo.CreateException(context.Background(), &domain.DateException{
		TemplateID:    1,
		ExceptionDate: testDate,
		IsAvailable:   false,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateException_Duplicate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO date_exceptions").
		WithArgs(int64(1), testDate, false).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.CreateException(context.Background(), &domain.DateException{
		TemplateID:    1,
		ExceptionDate: testDate,
		IsAvailable:   false,
	})

	assert.ErrorIs(t, err, ErrDuplicateException)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExceptionsByTemplate(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{
		"id", "template_id", "exception_date", "is_available", "created_at",
	}).AddRow(int64(7), int64(1), testDate, false, testTime)

	mock.ExpectQuery("SELECT .+ FROM date_exceptions").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	exceptions, err := repo.GetExceptionsByTemplate(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, exceptions, 1)
	assert.Equal(t, testDate, exceptions[0].ExceptionDate)
	assert.False(t, exceptions[0].IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteException_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM date_exceptions").
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteException(context.Background(), 1, 3)
	assert.ErrorIs(t, err, ErrExceptionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
