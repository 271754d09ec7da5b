package service

import (
	"sync"
	"time"

	"sales-crm-backend/internal/logger"
)

// Event entities
const (
	EventEntityCompany    = "company"
	EventEntityContact    = "contact"
	EventEntityEnquiry    = "enquiry"
	EventEntityEmailDraft = "email_draft"
	EventEntityReminder   = "reminder"
)

// Event actions
const (
	EventActionCreate = "create"
	EventActionUpdate = "update"
	EventActionDelete = "delete"
)

// Event carries the post-image of a changed row to subscribers
type Event struct {
	Entity    string      `json:"entity"`
	Action    string      `json:"action"`
	Record    interface{} `json:"record"`
	Timestamp time.Time   `json:"timestamp"`
}

// Subscription is a handle on a change feed. Consume Events() until it closes
// and call Unsubscribe when done; Unsubscribe is idempotent.
type Subscription struct {
	events chan Event
	once   sync.Once
	cancel func()
}

// Events returns the subscription's event stream
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Unsubscribe tears the subscription down and closes the event stream
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// ChangeFeed is an in-process change feed. Services publish post-images of
// changed rows on every successful write; subscribers receive them on their
// own buffered channel. A slow subscriber loses events rather than blocking
// writers.
type ChangeFeed struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	log    *logger.Logger
}

const subscriptionBuffer = 64

// NewChangeFeed creates a new change feed
func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{
		subs: make(map[int]chan Event),
		log:  logger.WithComponent("changefeed"),
	}
}

// Subscribe registers a new subscriber and returns its subscription
func (f *ChangeFeed) Subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++

	ch := make(chan Event, subscriptionBuffer)
	f.subs[id] = ch

	return &Subscription{
		events: ch,
		cancel: func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if sub, ok := f.subs[id]; ok {
				delete(f.subs, id)
				close(sub)
			}
		},
	}
}

// Publish delivers an event to every current subscriber. Events to
// subscribers with a full buffer are dropped.
func (f *ChangeFeed) Publish(entity, action string, record interface{}) {
	if f == nil {
		return
	}

	event := Event{
		Entity:    entity,
		Action:    action,
		Record:    record,
		Timestamp: time.Now().UTC(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for id, ch := range f.subs {
		select {
		case ch <- event:
		default:
			f.log.WithField("subscriber", id).Warn("dropping change event for slow subscriber")
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (f *ChangeFeed) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
