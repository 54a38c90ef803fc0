package notifications

import (
	"sync"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
)

// DefaultBuffer is the per-subscriber channel capacity. A subscriber that
// falls this far behind starts losing events and is expected to resync via
// the pull listings.
const DefaultBuffer = 64

// Scope selects which order events a subscription receives: every order, or
// only orders owned by one customer.
type Scope struct {
	all     bool
	ownerID string
}

// ScopeAll receives every order event. Staff only; callers authorize scopes
// before subscribing.
func ScopeAll() Scope {
	return Scope{all: true}
}

// ScopeOwned receives events for orders owned by the given customer.
func ScopeOwned(ownerID kernel.UUID) Scope {
	return Scope{ownerID: ownerID.String()}
}

// Matches reports whether an event falls inside the scope. Creation events
// are routed to the owner only; staff pick new orders up through the pull
// listings.
func (s Scope) Matches(event order.Event) bool {
	if s.all {
		return event.Kind != order.EventKindCreated
	}
	return s.ownerID == event.OwnerID()
}

// Subscription is one connected client's event feed. Events arrive on a
// buffered channel in per-order commit order; when the buffer is full new
// events for that subscriber are dropped rather than blocking the publisher.
type Subscription struct {
	id     string
	scope  Scope
	events chan order.Event
}

// Events returns the receive side of the subscription's feed. The channel is
// closed when the subscription is removed from the registry.
func (s *Subscription) Events() <-chan order.Event {
	return s.events
}

// ID returns the registry-assigned subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Registry tracks live subscriptions and fans committed order events out to
// every subscription whose scope matches. It is guarded independently of
// order mutations: subscribing, unsubscribing, and publishing never contend
// with the per-order locks in the command layer.
type Registry struct {
	mu     sync.RWMutex
	subs   map[string]*Subscription
	buffer int
}

// NewRegistry creates an empty Registry with the given per-subscriber buffer
// size. A non-positive size falls back to DefaultBuffer.
func NewRegistry(buffer int) *Registry {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Registry{
		subs:   make(map[string]*Subscription),
		buffer: buffer,
	}
}

// Subscribe registers a new subscription for the given scope.
func (r *Registry) Subscribe(scope Scope) *Subscription {
	sub := &Subscription{
		id:     kernel.NewUUID().String(),
		scope:  scope,
		events: make(chan order.Event, r.buffer),
	}

	r.mu.Lock()
	r.subs[sub.id] = sub
	r.mu.Unlock()
	return sub
}

// Unsubscribe removes the subscription and closes its event channel. Safe to
// call more than once.
func (r *Registry) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[sub.id]; !ok {
		return
	}
	delete(r.subs, sub.id)
	close(sub.events)
}

// Publish delivers the event to every matching subscription. Delivery is
// best-effort: a subscriber whose buffer is full misses this event, and the
// publisher never blocks. Returns how many subscribers received the event.
func (r *Registry) Publish(event order.Event) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delivered := 0
	for _, sub := range r.subs {
		if !sub.scope.Matches(event) {
			continue
		}
		select {
		case sub.events <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// Len reports the number of live subscriptions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
