// Package events provides a synchronous publish/subscribe bus used by the
// game systems to report what happened without knowing who is listening.
package events

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

type subscription struct {
	id      uint64
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscription
	nextID      uint64
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscription),
	}
}

// Subscribe registers a handler for a specific event type. The returned
// function removes the handler again.
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) (unsubscribe func()) {
	em.nextID++
	id := em.nextID
	em.subscribers[eventType] = append(em.subscribers[eventType], subscription{id: id, handler: handler})

	return func() {
		em.unsubscribe(eventType, id)
	}
}

func (em *EventManager) unsubscribe(eventType EventType, id uint64) {
	subs, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	kept := subs[:0]
	for _, s := range subs {
		if s.id != id {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		delete(em.subscribers, eventType)
	} else {
		em.subscribers[eventType] = kept
	}
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	for _, s := range em.subscribers[event.Type()] {
		s.handler(event)
	}
}

// HasSubscribers reports whether anything listens for the event type
func (em *EventManager) HasSubscribers(eventType EventType) bool {
	return len(em.subscribers[eventType]) > 0
}
