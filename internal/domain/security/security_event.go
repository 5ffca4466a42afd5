// Package security models SecurityEvent, the append-only audit sink C7 writes to.
package security

import "time"

// Severity is the closed set of security event severities.
type Severity string

// The four supported severities, ascending.
const (
	SeverityInfo     Severity = "INFO"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// EventType is the closed set of recognized security event types.
type EventType string

// Recognized violation types.
const (
	EventTypePathParameterManipulation EventType = "PATH_PARAMETER_MANIPULATION"
	EventTypeTokenPrivilegeEscalation  EventType = "TOKEN_PRIVILEGE_ESCALATION"
)

// Event is one append-only security audit record. Checksum is a SHA-256
// digest over the canonical msgpack serialization of every field above it.
type Event struct {
	Type                EventType      `bson:"type" json:"type"`
	UserID              int64          `bson:"user_id" json:"user_id"`
	SessionID           string         `bson:"session_id,omitempty" json:"session_id,omitempty"`
	Severity            Severity       `bson:"severity" json:"severity"`
	Timestamp           time.Time      `bson:"timestamp" json:"timestamp"`
	RequestID           string         `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Details             map[string]any `bson:"details,omitempty" json:"details,omitempty"`
	ClientIP            string         `bson:"client_ip,omitempty" json:"client_ip,omitempty"`
	UserAgent           string         `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Checksum            string         `bson:"checksum" json:"checksum"`
	AnonymizationDate   time.Time      `bson:"anonymization_date" json:"anonymization_date"`
	RetentionExpiryDate time.Time      `bson:"retention_expiry_date" json:"retention_expiry_date"`
}

const (
	anonymizationWindow = 90 * 24 * time.Hour
	retentionWindow     = 7 * 365 * 24 * time.Hour
)

// checksumFields is the subset of Event serialized for the checksum;
// Checksum, AnonymizationDate and RetentionExpiryDate are derived from, and
// so excluded from, this canonical form.
type checksumFields struct {
	Type       EventType
	UserID     int64
	SessionID  string
	Severity   Severity
	Timestamp  time.Time
	RequestID  string
	Details    map[string]any
	ClientIP   string
	UserAgent  string
}

// Seal stamps timestamp-derived fields and the checksum on a freshly built
// event. checksum digests the event's checksumFields; see pkg/mchecksum.
func (e *Event) Seal(now time.Time, checksum func(any) (string, error)) error {
	e.Timestamp = now
	e.AnonymizationDate = now.Add(anonymizationWindow)
	e.RetentionExpiryDate = now.Add(retentionWindow)

	sum, err := checksum(checksumFields{
		Type:      e.Type,
		UserID:    e.UserID,
		SessionID: e.SessionID,
		Severity:  e.Severity,
		Timestamp: e.Timestamp,
		RequestID: e.RequestID,
		Details:   e.Details,
		ClientIP:  e.ClientIP,
		UserAgent: e.UserAgent,
	})
	if err != nil {
		return err
	}

	e.Checksum = sum

	return nil
}
