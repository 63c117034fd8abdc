package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking defaults applied when the user omits start/end times
const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "18:00"
)

// DefaultHorizonDays horizon for the "my bookings" listing
const DefaultHorizonDays = 14

// DefaultPageLimit default page size for paginated listings
const DefaultPageLimit = 100
