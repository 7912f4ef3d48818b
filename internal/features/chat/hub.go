package chat

import (
	"sync"

	"github.com/google/uuid"
)

const subscriberBuffer = 64

// Subscription is one live feed on a project's message stream. Messages
// arrive in insertion order. Unsubscribe is safe to call more than once
// but must be called at least once or the subscription leaks.
type Subscription struct {
	C chan MessageResponseDTO

	hub       *Hub
	projectID uuid.UUID
	closeOnce sync.Once
}

func (s *Subscription) Unsubscribe() {
	s.closeOnce.Do(func() {
		s.hub.remove(s.projectID, s)
		close(s.C)
	})
}

// Hub fans new messages out to every open subscription for a project.
type Hub struct {
	mu            sync.RWMutex
	subscriptions map[uuid.UUID]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscriptions: make(map[uuid.UUID]map[*Subscription]struct{}),
	}
}

func (h *Hub) Subscribe(projectID uuid.UUID) *Subscription {
	subscription := &Subscription{
		C:         make(chan MessageResponseDTO, subscriberBuffer),
		hub:       h,
		projectID: projectID,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscriptions[projectID] == nil {
		h.subscriptions[projectID] = make(map[*Subscription]struct{})
	}
	h.subscriptions[projectID][subscription] = struct{}{}

	return subscription
}

// Publish delivers to every subscriber without blocking the sender; a
// subscriber that cannot keep up drops messages and is expected to
// reconcile by refetching history on reconnect.
func (h *Hub) Publish(projectID uuid.UUID, message MessageResponseDTO) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for subscription := range h.subscriptions[projectID] {
		select {
		case subscription.C <- message:
		default:
		}
	}
}

func (h *Hub) remove(projectID uuid.UUID, subscription *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subscriptions[projectID], subscription)
	if len(h.subscriptions[projectID]) == 0 {
		delete(h.subscriptions, projectID)
	}
}

// SubscriberCount is used by tests and the healthcheck snapshot.
func (h *Hub) SubscriberCount(projectID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscriptions[projectID])
}
