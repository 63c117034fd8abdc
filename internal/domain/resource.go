package domain

// ResourceType represents the kind of bookable resource
type ResourceType string

const (
	TypeFlexDesk    ResourceType = "flexDesk"
	TypeMeetingRoom ResourceType = "meetingRoom"
	TypeParking     ResourceType = "parking"
	TypeOther       ResourceType = "other"
)

// Resource represents a bookable unit (desk, meeting room, parking spot).
// Read-only from the client's perspective; always belongs to exactly one office.
type Resource struct {
	ID       string
	Name     string
	Type     ResourceType
	OfficeID string
	ZoneID   *string
	FloorID  *string
}

// Office represents a physical site grouping resources and zones.
// Immutable once fetched.
type Office struct {
	ID       string
	Name     string
	TimeZone string // IANA zone, may be empty
}

// User represents an account known to the remote service
type User struct {
	ID       string
	Name     string
	Email    string
	Role     string
	OfficeID string
	Status   string
}

// ParseResourceType validates a user-supplied resource type string.
// Returns false for unknown types.
func ParseResourceType(s string) (ResourceType, bool) {
	switch ResourceType(s) {
	case TypeFlexDesk, TypeMeetingRoom, TypeParking, TypeOther:
		return ResourceType(s), true
	}
	return "", false
}

// FilterByType returns the resources matching the given type, preserving input order.
// A nil type means no filtering.
func FilterByType(resources []Resource, t *ResourceType) []Resource {
	if t == nil {
		return resources
	}
	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if r.Type == *t {
			out = append(out, r)
		}
	}
	return out
}
