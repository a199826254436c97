package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParentContainer(t *testing.T) {
	container, err := ParentContainer("https://alice.example/hospex/messages/xyz/index.ttl#this")
	if assert.NoError(t, err) {
		assert.Equal(t, "https://alice.example/hospex/messages/xyz/", container)
	}

	container, err = ParentContainer("https://alice.example/hospex/messages/xyz/")
	if assert.NoError(t, err) {
		assert.Equal(t, "https://alice.example/hospex/messages/", container)
	}
}

func TestDayDocument(t *testing.T) {
	container := "https://alice.example/hospex/messages/xyz/"

	morning := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2024, 5, 3, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, container+"2024/05/02/chat.ttl", DayDocument(container, morning))
	assert.Equal(t, DayDocument(container, morning), DayDocument(container, evening))
	assert.NotEqual(t, DayDocument(container, evening), DayDocument(container, nextDay))
}

func TestNewID(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}

func TestResolveReference(t *testing.T) {
	resolved, err := ResolveReference("https://bob.example/inbox/", "notification-1")
	if assert.NoError(t, err) {
		assert.Equal(t, "https://bob.example/inbox/notification-1", resolved)
	}

	resolved, err = ResolveReference("https://bob.example/inbox/", "https://other.example/doc")
	if assert.NoError(t, err) {
		assert.Equal(t, "https://other.example/doc", resolved)
	}
}
