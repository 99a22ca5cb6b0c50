package schema

import "time"

const (
	EventCollection = "ledger_events"
)

type EventKind string

const (
	EventAccountRegistered EventKind = "AccountRegistered"
	EventRequestCreated    EventKind = "RequestCreated"
	EventRequestMatched    EventKind = "RequestMatched"
	EventRequestCompleted  EventKind = "RequestCompleted"
	EventReviewSubmitted   EventKind = "ReviewSubmitted"
)

// Event is a notification emitted after a command commits. It carries
// identifiers only:
//   - AccountRegistered: Identity
//   - RequestCreated: RequestID, Identity (requester)
//   - RequestMatched: RequestID, Identity (helper), Counterparty (requester)
//   - RequestCompleted: RequestID, Identity (caller)
//   - ReviewSubmitted: RequestID, Identity (reviewed), Counterparty (reviewer), Rating
type Event struct {
	Kind         EventKind `json:"kind" bson:"kind"`
	Identity     string    `json:"identity" bson:"identity"`
	Counterparty string    `json:"counterparty,omitempty" bson:"counterparty,omitempty"`
	RequestID    int64     `json:"request_id,omitempty" bson:"request_id,omitempty"`
	Rating       int       `json:"rating,omitempty" bson:"rating,omitempty"`
}

// JournalEntry is an event as kept in the journal collection.
type JournalEntry struct {
	ID         string    `json:"id" bson:"id"`
	Event      Event     `json:"event" bson:"event"`
	Parties    []string  `json:"-" bson:"parties"`
	RecordedAt time.Time `json:"recorded_at" bson:"recorded_at"`
}
