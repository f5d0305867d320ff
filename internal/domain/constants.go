package domain

// Default configuration values
const (
	DefaultDurationMinutes  = 60
	DefaultMaxDailyBookings = 0 // 0 = без ограничения
)

// Business validation constants
const (
	MinDurationMinutes  = 5
	MaxDurationMinutes  = 480 // 8 часов
	MinDailyBookings    = 0
	MaxDailyBookingsCap = 100
	MaxTemplateNameLen  = 200
	MaxScheduleRecords  = 500 // защитный потолок на количество слотов/исключений шаблона
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
