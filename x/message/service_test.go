package message

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mrkvon/sleepy.bike/core"
	mock_core "github.com/mrkvon/sleepy.bike/core/mock"
)

const (
	alice   = "https://alice.example/profile/card#me"
	chatURI = "https://alice.example/hospex/messages/xyz/index.ttl#this"
)

func TestSend(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC)

	mockClock := mock_core.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(now)

	var day core.Chat

	mockStore := mock_core.NewMockStoreService(ctrl)
	mockStore.EXPECT().UpdateChat(
		gomock.Any(),
		"https://alice.example/hospex/messages/xyz/2024/05/12/chat.ttl",
		gomock.Any(),
	).DoAndReturn(
		func(ctx context.Context, uri string, transform func(*core.Chat) error) error {
			return transform(&day)
		},
	)

	service := NewService(mockStore, mockClock)

	sent, err := service.Send(ctx, alice, "hello bob", chatURI)
	if assert.NoError(t, err) {
		assert.Equal(t, "https://alice.example/hospex/messages/xyz/2024/05/12/chat.ttl", sent.TodayChat)
		assert.True(t, strings.HasPrefix(sent.MessageID, sent.TodayChat+"#msg-"))
		assert.Equal(t, now, sent.CreatedAt)
	}

	if assert.Len(t, day.Messages, 1) {
		assert.Equal(t, sent.MessageID, day.Messages[0].ID)
		assert.Equal(t, "hello bob", day.Messages[0].Content)
		assert.Equal(t, alice, day.Messages[0].Maker)
		assert.Equal(t, now, day.Messages[0].Created)
	}
}

func TestSendBucketsByCalendarDay(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	morning := time.Date(2024, 5, 12, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 12, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 5, 13, 0, 30, 0, 0, time.UTC)

	mockClock := mock_core.NewMockClock(ctrl)
	gomock.InOrder(
		mockClock.EXPECT().Now().Return(morning),
		mockClock.EXPECT().Now().Return(evening),
		mockClock.EXPECT().Now().Return(nextDay),
	)

	mockStore := mock_core.NewMockStoreService(ctrl)
	mockStore.EXPECT().UpdateChat(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	service := NewService(mockStore, mockClock)

	first, err := service.Send(ctx, alice, "one", chatURI)
	assert.NoError(t, err)
	second, err := service.Send(ctx, alice, "two", chatURI)
	assert.NoError(t, err)
	third, err := service.Send(ctx, alice, "three", chatURI)
	assert.NoError(t, err)

	// same day, same log document; next day, a fresh one
	assert.Equal(t, first.TodayChat, second.TodayChat)
	assert.NotEqual(t, second.TodayChat, third.TodayChat)
	assert.Equal(t, "https://alice.example/hospex/messages/xyz/2024/05/13/chat.ttl", third.TodayChat)
}

func TestSendPropagatesStoreFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := mock_core.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Now())

	mockStore := mock_core.NewMockStoreService(ctrl)
	mockStore.EXPECT().UpdateChat(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	service := NewService(mockStore, mockClock)

	_, err := service.Send(ctx, alice, "hello", chatURI)
	assert.ErrorIs(t, err, assert.AnError)
}
