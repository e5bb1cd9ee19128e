package events

import (
	"time"
)

// TopicEnrollmentEvents is the Kafka topic all enrollment events go to.
const TopicEnrollmentEvents = "enrollment.events"

type EventType string

const (
	EventSelectionCreated     EventType = "selection.created"
	EventSelectionRemoved     EventType = "selection.removed"
	EventTransactionAttached  EventType = "selection.transaction_attached"
	EventPaymentIntentCreated EventType = "payment.intent_created"
)

// EnrollmentEvent is the payload published for every ledger and checkout
// mutation. Publishing is fire-and-forget: downstream consumers (reporting,
// notifications) must tolerate loss.
type EnrollmentEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`

	SelectionID   uint    `json:"selection_id,omitempty"`
	StudentEmail  string  `json:"student_email,omitempty"`
	ClassName     string  `json:"class_name,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	AmountCents   int64   `json:"amount_cents,omitempty"`
	Price         float64 `json:"price,omitempty"`
}
