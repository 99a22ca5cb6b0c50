package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/helpledger/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// EventJournal - append-only log of ledger notifications
type EventJournal interface {
	Record(ctx context.Context, e schema.Event) error
	EventsFor(ctx context.Context, identity string) ([]schema.JournalEntry, error)
	EventsForRequest(ctx context.Context, requestID int64) ([]schema.JournalEntry, error)
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

type mongoJournal struct {
	client   *mongo.Client
	database string
}

// NewMongoJournal - return an event journal kept in mongo db
func NewMongoJournal(client *mongo.Client, database string) EventJournal {
	return &mongoJournal{
		client:   client,
		database: database,
	}
}

func (m mongoJournal) collection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.EventCollection)
}

// Ping - ping mongo db
func (m mongoJournal) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoJournal) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// Record appends an event. Both the identity and the counterparty can find
// it through EventsFor.
func (m mongoJournal) Record(ctx context.Context, e schema.Event) error {
	parties := []string{e.Identity}
	if e.Counterparty != "" && e.Counterparty != e.Identity {
		parties = append(parties, e.Counterparty)
	}

	entry := schema.JournalEntry{
		ID:         uuid.New().String(),
		Event:      e,
		Parties:    parties,
		RecordedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := m.collection().InsertOne(ctx, entry); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).WithField("kind", e.Kind).Error("record event")
		return err
	}
	return nil
}

func (m mongoJournal) EventsFor(ctx context.Context, identity string) ([]schema.JournalEntry, error) {
	return m.find(ctx, bson.M{"parties": identity})
}

func (m mongoJournal) EventsForRequest(ctx context.Context, requestID int64) ([]schema.JournalEntry, error) {
	return m.find(ctx, bson.M{"event.request_id": requestID})
}

func (m mongoJournal) find(ctx context.Context, filter bson.M) ([]schema.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "recorded_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	entries := make([]schema.JournalEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
