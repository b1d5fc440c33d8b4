package models

// Notification kinds.
const (
	NotifyStudioAccess    = "studio-access"
	NotifyEngineerRequest = "engineer-request"
	NotifyMixingRequest   = "mixing"
	NotifyContact         = "contact"
)

// Notification is the payload delivered to the studio inbox.
type Notification struct {
	Kind        string `json:"kind"`
	BookingID   string `json:"bookingId,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Message     string `json:"message,omitempty"`
}
