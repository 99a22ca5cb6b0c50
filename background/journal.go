package background

import (
	"context"
	"time"

	"github.com/bitmark-inc/helpledger/schema"
	"github.com/bitmark-inc/helpledger/store"
)

const journalTimeout = 5 * time.Second

// JournalObserver records every ledger event in the event journal
type JournalObserver struct {
	journal store.EventJournal
}

func NewJournalObserver(journal store.EventJournal) *JournalObserver {
	return &JournalObserver{journal: journal}
}

func (j *JournalObserver) Notify(e schema.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()

	if err := j.journal.Record(ctx, e); err != nil {
		log.WithField("kind", e.Kind).WithField("request_id", e.RequestID).WithError(err).Error("record event")
	}
}
