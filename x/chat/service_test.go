package chat

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
	alice = "https://alice.example/profile/card#me"
	bob   = "https://bob.example/profile/card#me"

	hospexContainer  = "https://alice.example/hospex/"
	privateTypeIndex = "https://alice.example/settings/privateTypeIndex.ttl"
)

func TestEstablish(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC)

	mockClock := mock_core.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(now)

	var created core.Chat
	var createdURI string

	mockStore := mock_core.NewMockStoreService(ctrl)
	mockStore.EXPECT().CreateChat(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, uri string, chat core.Chat) error {
			createdURI = uri
			created = chat
			return nil
		},
	)

	mockAcl := mock_core.NewMockAclService(ctrl)
	mockTypeIndex := mock_core.NewMockTypeIndexService(ctrl)

	service := NewService(mockStore, mockAcl, mockTypeIndex, mockClock)

	mockAcl.EXPECT().Discover(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, container string) (string, error) {
			return container + ".acl", nil
		},
	)
	mockAcl.EXPECT().Provision(gomock.Any(), gomock.Any(), gomock.Any(), alice, bob).Return(nil)
	mockTypeIndex.EXPECT().Register(gomock.Any(), privateTypeIndex, core.TypeLongChat, gomock.Any()).Return(nil)

	established, err := service.Establish(ctx, alice, bob, "", hospexContainer, privateTypeIndex)
	if assert.NoError(t, err) {
		assert.True(t, strings.HasPrefix(established.ChatContainer, hospexContainer+"messages/"))
		assert.True(t, strings.HasSuffix(established.ChatContainer, "/"))
		assert.Equal(t, established.ChatContainer+core.ChatDocumentName, established.ChatFile)
		assert.Equal(t, established.ChatFile+core.ChatFragment, established.ChatID)
	}

	assert.Equal(t, established.ChatFile, createdURI)
	assert.Equal(t, core.TypeLongChat, created.Type)
	assert.Equal(t, alice, created.Author)
	assert.Equal(t, core.DefaultChatTitle, created.Title)
	assert.Equal(t, now, created.Created)

	if assert.Len(t, created.Participation, 2) {
		assert.Equal(t, alice, created.Participation[0].Participant)
		assert.Empty(t, created.Participation[0].References)
		assert.Equal(t, bob, created.Participation[1].Participant)
		assert.Empty(t, created.Participation[1].References)
	}
}

func TestEstablishLinksExistingCounterpartChat(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	otherChat := "https://bob.example/hospex/messages/abc/index.ttl#this"

	mockClock := mock_core.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Now())

	var created core.Chat

	mockStore := mock_core.NewMockStoreService(ctrl)
	mockStore.EXPECT().CreateChat(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, uri string, chat core.Chat) error {
			created = chat
			return nil
		},
	)

	mockAcl := mock_core.NewMockAclService(ctrl)
	mockAcl.EXPECT().Discover(gomock.Any(), gomock.Any()).Return("https://alice.example/hospex/messages/x/.acl", nil)
	mockAcl.EXPECT().Provision(gomock.Any(), gomock.Any(), gomock.Any(), alice, bob).Return(nil)

	mockTypeIndex := mock_core.NewMockTypeIndexService(ctrl)
	mockTypeIndex.EXPECT().Register(gomock.Any(), privateTypeIndex, core.TypeLongChat, gomock.Any()).Return(nil)

	service := NewService(mockStore, mockAcl, mockTypeIndex, mockClock)

	_, err := service.Establish(ctx, alice, bob, otherChat, hospexContainer, privateTypeIndex)
	if assert.NoError(t, err) {
		assert.Len(t, created.Participation, 2)
		assert.Equal(t, []string{otherChat}, created.Participation[1].References)
	}
}

func TestEstablishAbortsWithoutAclLink(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := mock_core.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Now())

	mockStore := mock_core.NewMockStoreService(ctrl)
	mockStore.EXPECT().CreateChat(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	mockAcl := mock_core.NewMockAclService(ctrl)
	mockAcl.EXPECT().Discover(gomock.Any(), gomock.Any()).Return("", core.NewErrorAclNotFound())

	// neither grants nor type registration may happen once discovery fails
	mockTypeIndex := mock_core.NewMockTypeIndexService(ctrl)

	service := NewService(mockStore, mockAcl, mockTypeIndex, mockClock)

	_, err := service.Establish(ctx, alice, bob, "", hospexContainer, privateTypeIndex)
	if assert.Error(t, err) {
		assert.IsType(t, core.ErrorAclNotFound{}, err)
	}
}

func TestEstablishGeneratesFreshIdentifiers(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := mock_core.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Now()).Times(2)

	mockStore := mock_core.NewMockStoreService(ctrl)
	mockStore.EXPECT().CreateChat(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	mockAcl := mock_core.NewMockAclService(ctrl)
	mockAcl.EXPECT().Discover(gomock.Any(), gomock.Any()).Return("acl", nil).Times(2)
	mockAcl.EXPECT().Provision(gomock.Any(), gomock.Any(), gomock.Any(), alice, bob).Return(nil).Times(2)

	mockTypeIndex := mock_core.NewMockTypeIndexService(ctrl)
	mockTypeIndex.EXPECT().Register(gomock.Any(), privateTypeIndex, core.TypeLongChat, gomock.Any()).Return(nil).Times(2)

	service := NewService(mockStore, mockAcl, mockTypeIndex, mockClock)

	first, err := service.Establish(ctx, alice, bob, "", hospexContainer, privateTypeIndex)
	assert.NoError(t, err)
	second, err := service.Establish(ctx, alice, bob, "", hospexContainer, privateTypeIndex)
	assert.NoError(t, err)

	// a retried establishment never collides with a partial prior attempt
	assert.NotEqual(t, first.ChatContainer, second.ChatContainer)
}
