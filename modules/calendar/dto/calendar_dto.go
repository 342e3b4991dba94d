package dto

import "time"

const (
	ProviderGoogle  = "google"
	ProviderOutlook = "outlook"
)

// BusyPeriod is one occupied interval reported by the provider's free/busy API.
type BusyPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ProviderEventRequest is the provider-agnostic shape of a create-event call.
type ProviderEventRequest struct {
	Summary               string    `json:"summary"`
	Description           string    `json:"description"`
	Start                 time.Time `json:"start"`
	End                   time.Time `json:"end"`
	Attendees             []string  `json:"attendees"`
	ConferencingRequested bool      `json:"conferencing_requested"`
	RequestID             string    `json:"request_id"`
}

// ConferenceEntryPoint is one way to join the conference attached to an event.
type ConferenceEntryPoint struct {
	Type string `json:"entryPointType"`
	URI  string `json:"uri"`
}

// ProviderEventResponse is the provider's answer to a create-event call.
type ProviderEventResponse struct {
	EventID     string                 `json:"event_id"`
	HTMLLink    string                 `json:"html_link"`
	EntryPoints []ConferenceEntryPoint `json:"entry_points"`
}

// CalendarConnectionResponse is the API shape of one stored connection.
type CalendarConnectionResponse struct {
	ID            string `json:"id"`
	Provider      string `json:"provider"`
	CalendarEmail string `json:"calendar_email"`
	IsActive      bool   `json:"is_active"`
	ConnectedAt   string `json:"connected_at"`
}

type CalendarConnectionListResponse struct {
	Connections []CalendarConnectionResponse `json:"connections"`
}

type ConnectURLResponse struct {
	AuthURL string `json:"auth_url"`
}
