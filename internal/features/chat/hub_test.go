package chat

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HubPublish_ReachesEverySubscriberOnTheProject(t *testing.T) {
	hub := NewHub()
	projectID := uuid.New()
	otherProjectID := uuid.New()

	first := hub.Subscribe(projectID)
	second := hub.Subscribe(projectID)
	unrelated := hub.Subscribe(otherProjectID)
	defer first.Unsubscribe()
	defer second.Unsubscribe()
	defer unrelated.Unsubscribe()

	message := MessageResponseDTO{ID: uuid.New(), ProjectID: projectID, Content: "ping"}
	hub.Publish(projectID, message)

	require.Len(t, first.C, 1)
	require.Len(t, second.C, 1)
	assert.Empty(t, unrelated.C)

	received := <-first.C
	assert.Equal(t, message.ID, received.ID)
}

func Test_HubPublish_WithSlowSubscriber_DropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	projectID := uuid.New()

	subscription := hub.Subscribe(projectID)
	defer subscription.Unsubscribe()

	for i := 0; i < subscriberBuffer+10; i++ {
		hub.Publish(projectID, MessageResponseDTO{ID: uuid.New(), ProjectID: projectID})
	}

	assert.Len(t, subscription.C, subscriberBuffer)
}

func Test_HubUnsubscribe_RemovesSubscriberAndIsIdempotent(t *testing.T) {
	hub := NewHub()
	projectID := uuid.New()

	subscription := hub.Subscribe(projectID)
	require.Equal(t, 1, hub.SubscriberCount(projectID))

	subscription.Unsubscribe()
	assert.Equal(t, 0, hub.SubscriberCount(projectID))

	subscription.Unsubscribe()
	assert.Equal(t, 0, hub.SubscriberCount(projectID))
}

func Test_HubPublish_WithoutSubscribers_DoesNothing(t *testing.T) {
	hub := NewHub()

	hub.Publish(uuid.New(), MessageResponseDTO{ID: uuid.New()})

	assert.Equal(t, 0, hub.SubscriberCount(uuid.New()))
}
