package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusDeclined  BookingStatus = "declined"
	StatusCancelled BookingStatus = "cancelled"
)

// CheckInStatus represents the check-in state of a booking
type CheckInStatus string

const (
	CheckInPending    CheckInStatus = "pending"
	CheckInCheckedIn  CheckInStatus = "checkedIn"
	CheckInCheckedOut CheckInStatus = "checkedOut"
	CheckInNoShow     CheckInStatus = "noShow"
)

// Booking represents a reservation of one resource for a time range by one user.
// The time range is half-open: [StartTime, EndTime).
type Booking struct {
	ID            string
	UserID        string
	ResourceID    string
	OfficeID      string
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	CheckInStatus CheckInStatus
	IsAnonymous   bool

	// Embedded summaries, present when the API expands them
	User     *UserSummary
	Resource *ResourceSummary

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSummary is the short user representation embedded in bookings
type UserSummary struct {
	ID    string
	Name  string
	Email string
}

// ResourceSummary is the short resource representation embedded in bookings
type ResourceSummary struct {
	ID   string
	Name string
	Type ResourceType
}

// IsActive returns true if the booking still occupies its resource
func (b *Booking) IsActive() bool {
	return b.Status != StatusDeclined && b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanCheckIn returns true if the booking is still awaiting a check-in
func (b *Booking) CanCheckIn() bool {
	return b.IsActive() && b.CheckInStatus == CheckInPending
}

// Overlaps reports whether the booking intersects the half-open range [start, end)
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// OccupantName returns the display name of the booking owner.
// Anonymous bookings and bookings without an embedded user are reported as "occupied".
func (b *Booking) OccupantName() string {
	if b.IsAnonymous || b.User == nil || b.User.Name == "" {
		return "occupied"
	}
	return b.User.Name
}

// BookingsFilter query filter for booking listings
type BookingsFilter struct {
	StartDate  string // YYYY-MM-DD, inclusive
	EndDate    string // YYYY-MM-DD, inclusive
	UserID     string
	OfficeID   string
	ResourceID string
	ZoneID     string
	Status     *BookingStatus
}
