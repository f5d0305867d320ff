package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestValidateSlot_NoExistingSlots(t *testing.T) {
	err := ValidateSlot(slot(0, time.Monday, "09:00", "10:00", true), nil)
	assert.NoError(t, err)
}

func TestValidateSlot_AdjacentSlotsAllowed(t *testing.T) {
	existing := []domain.RecurringSlot{
		slot(1, time.Monday, "09:00", "17:00", true),
	}

	// Граничащие интервалы пересечением не считаются
	err := ValidateSlot(slot(0, time.Monday, "17:00", "18:00", true), existing)
	assert.NoError(t, err)

	err = ValidateSlot(slot(0, time.Monday, "08:00", "09:00", true), existing)
	assert.NoError(t, err)
}

func TestValidateSlot_OverlapRejected(t *testing.T) {
	// Сценарий из практики: к понедельнику 09:00-17:00 добавляют 16:30-18:00
	existing := []domain.RecurringSlot{
		slot(1, time.Monday, "09:00", "17:00", true),
	}

	err := ValidateSlot(slot(0, time.Monday, "16:30", "18:00", true), existing)
	require.Error(t, err)

	var overlapErr *OverlapError
	require.True(t, errors.As(err, &overlapErr))
	assert.Equal(t, int64(1), overlapErr.ExistingID)
	assert.Equal(t, "16:30", overlapErr.CandidateStart)
	assert.Equal(t, "09:00", overlapErr.ExistingStart)
}

func TestValidateSlot_ContainedCandidateRejected(t *testing.T) {
	existing := []domain.RecurringSlot{
		slot(1, time.Monday, "09:00", "17:00", true),
	}

	err := ValidateSlot(slot(0, time.Monday, "10:00", "11:00", true), existing)

	var overlapErr *OverlapError
	require.True(t, errors.As(err, &overlapErr))
}

func TestValidateSlot_OtherWeekdayIgnored(t *testing.T) {
	existing := []domain.RecurringSlot{
		slot(1, time.Monday, "09:00", "17:00", true),
	}

	err := ValidateSlot(slot(0, time.Tuesday, "10:00", "11:00", true), existing)
	assert.NoError(t, err)
}

func TestValidateSlot_BlockedExistingIgnored(t *testing.T) {
	// Пересечение проверяется только с доступными слотами: блокировка
	// и так ничего не открывает
	existing := []domain.RecurringSlot{
		slot(1, time.Monday, "09:00", "17:00", false),
	}

	err := ValidateSlot(slot(0, time.Monday, "10:00", "11:00", true), existing)
	assert.NoError(t, err)
}

func TestValidateSlot_InvalidBounds(t *testing.T) {
	err := ValidateSlot(slot(0, time.Monday, "17:00", "09:00", true), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = ValidateSlot(slot(0, time.Monday, "09:00", "09:00", true), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = ValidateSlot(slot(0, time.Monday, "9am", "17:00", true), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateSlot_OverlapErrorMessage(t *testing.T) {
	existing := []domain.RecurringSlot{
		slot(7, time.Friday, "12:00", "14:00", true),
	}

	err := ValidateSlot(slot(0, time.Friday, "13:00", "15:00", true), existing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlaps existing slot id=7")
	assert.Contains(t, err.Error(), "Friday")
}
