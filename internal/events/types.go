package events

import "io"

// Role classifies a stream by its audience.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleResident Role = "resident"
)

// Wire event types. Each event is framed as
// "event: <type>\n data: <json>\n\n"; the JSON body repeats the type field
// alongside the caller-supplied payload.
const (
	TypeConnected        = "connected"
	TypePaymentConfirmed = "payment_confirmed"
	TypeBoletoAlert      = "boleto_alert"
	TypeBoletoDueSoon    = "boleto_due_soon"
)

// Payload is the key-value body of an event. It is serialized at publish
// time and never persisted.
type Payload map[string]any

// EventWriter is the transport half of a stream: a response writer that can
// take raw event-stream frames and push them to the client immediately.
// gin.ResponseWriter satisfies it.
type EventWriter interface {
	io.Writer
	Flush()
}

// SubscribeInput is the request to open a new stream.
type SubscribeInput struct {
	Role Role
	// Identifier is the resident email. Required for RoleResident,
	// ignored for RoleAdmin. Case-insensitive.
	Identifier string
	Writer     EventWriter
}

// Subscription is a live stream registration. Close is idempotent and may be
// called from any of the termination paths; Done is closed once the stream
// will accept no further writes.
type Subscription interface {
	Done() <-chan struct{}
	Close()
}

// Stats is a snapshot of the registry for health reporting.
type Stats struct {
	AdminStreams    int `json:"admin_streams"`
	ResidentStreams int `json:"resident_streams"`
	UniqueResidents int `json:"unique_residents"`
}
