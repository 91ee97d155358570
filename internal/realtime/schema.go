package realtime

// Event names pushed to dashboard stream clients.
type Event string

const (
	// EventDashboard carries a freshly recomputed dashboard payload.
	EventDashboard Event = "dashboard"
	// EventPing keeps idle connections alive.
	EventPing Event = "ping"
)

// Message is the envelope written to WebSocket clients.
type Message struct {
	Event Event       `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}
