package ledger

import (
	"sync"

	"github.com/bitmark-inc/helpledger/schema"
)

// Observer receives the notifications of committed commands, in commit
// order. Notify is called with the ledger lock held and must not block.
type Observer interface {
	Notify(e schema.Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(e schema.Event)

func (f ObserverFunc) Notify(e schema.Event) {
	f(e)
}

// LogObserver writes every notification to the ledger log
type LogObserver struct{}

func (LogObserver) Notify(e schema.Event) {
	log.WithField("kind", e.Kind).
		WithField("identity", e.Identity).
		WithField("request_id", e.RequestID).
		Info("notification")
}

// AsyncObserver hands notifications to a slower observer on its own
// goroutine, keeping their order. Notifications that arrive while the
// buffer is full are dropped and logged.
type AsyncObserver struct {
	target Observer
	queue  chan schema.Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewAsyncObserver(target Observer, buffer int) *AsyncObserver {
	o := &AsyncObserver{
		target: target,
		queue:  make(chan schema.Event, buffer),
		done:   make(chan struct{}),
	}
	go o.loop()
	return o
}

func (o *AsyncObserver) loop() {
	defer close(o.done)
	for e := range o.queue {
		o.target.Notify(e)
	}
}

func (o *AsyncObserver) Notify(e schema.Event) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.closed {
		return
	}

	select {
	case o.queue <- e:
	default:
		log.WithField("kind", e.Kind).WithField("request_id", e.RequestID).Warn("notification queue full, dropped")
	}
}

// Close stops accepting notifications and waits until the queued ones
// are delivered
func (o *AsyncObserver) Close() {
	o.mu.Lock()
	if !o.closed {
		o.closed = true
		close(o.queue)
	}
	o.mu.Unlock()
	<-o.done
}
