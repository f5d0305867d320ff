package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BookingTemplate represents a reusable booking configuration to which
// recurring slots and date exceptions attach
type BookingTemplate struct {
	ID                  int64
	CompanyID           int64
	OwnerID             int64
	Name                string
	DurationMinutes     int
	DefaultStartingHour types.TimeString
	DefaultEndingHour   types.TimeString
	MaxDailyBookings    int // 0 = без ограничения
	IsPublished         bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsOwnedBy returns true if the template belongs to the given user
func (t *BookingTemplate) IsOwnedBy(userID int64) bool {
	return t.OwnerID == userID
}

// HasDailyLimit returns true if the template caps the number of bookable windows per day
func (t *BookingTemplate) HasDailyLimit() bool {
	return t.MaxDailyBookings > 0
}

// HasDefaultHours returns true if both default working hours are set
func (t *BookingTemplate) HasDefaultHours() bool {
	return !t.DefaultStartingHour.IsZero() && !t.DefaultEndingHour.IsZero()
}

// TemplateUpdate частичное обновление шаблона
// nil-поле означает "не менять"
type TemplateUpdate struct {
	Name                *string
	DurationMinutes     *int
	DefaultStartingHour *types.TimeString
	DefaultEndingHour   *types.TimeString
	MaxDailyBookings    *int
	IsPublished         *bool
}

// IsEmpty returns true if the update does not change anything
func (u *TemplateUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.DurationMinutes == nil &&
		u.DefaultStartingHour == nil &&
		u.DefaultEndingHour == nil &&
		u.MaxDailyBookings == nil &&
		u.IsPublished == nil
}
