package typeindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mrkvon/sleepy.bike/core"
	mock_core "github.com/mrkvon/sleepy.bike/core/mock"
)

const (
	indexURI = "https://alice.example/settings/privateTypeIndex.ttl"
	chatID   = "https://alice.example/hospex/messages/xyz/index.ttl#this"
)

func registerInto(t *testing.T, doc *core.TypeIndexDocument, instance string) error {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock_core.NewMockStoreService(ctrl)
	mockStore.EXPECT().UpdateTypeIndex(gomock.Any(), indexURI, gomock.Any()).DoAndReturn(
		func(ctx context.Context, uri string, transform func(*core.TypeIndexDocument) error) error {
			return transform(doc)
		},
	)

	service := NewService(mockStore)
	return service.Register(context.Background(), indexURI, core.TypeLongChat, instance)
}

func TestRegisterCreatesRegistration(t *testing.T) {
	var doc core.TypeIndexDocument

	err := registerInto(t, &doc, chatID)
	assert.NoError(t, err)

	if assert.Len(t, doc.References, 1) {
		assert.Equal(t, []string{core.TypeLongChat}, doc.References[0].ForClass)
		assert.Equal(t, []string{chatID}, doc.References[0].Instance)
		assert.NotEmpty(t, doc.References[0].ID)
	}
}

func TestRegisterExtendsExistingRegistration(t *testing.T) {
	doc := core.TypeIndexDocument{
		ID: indexURI,
		References: []core.TypeRegistration{
			{
				ID:       indexURI + "#existing",
				ForClass: []string{core.TypeLongChat},
				Instance: []string{"https://alice.example/hospex/messages/old/index.ttl#this"},
			},
		},
	}

	err := registerInto(t, &doc, chatID)
	assert.NoError(t, err)

	if assert.Len(t, doc.References, 1) {
		assert.Equal(t, []string{
			"https://alice.example/hospex/messages/old/index.ttl#this",
			chatID,
		}, doc.References[0].Instance)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	var doc core.TypeIndexDocument

	err := registerInto(t, &doc, chatID)
	assert.NoError(t, err)
	err = registerInto(t, &doc, chatID)
	assert.NoError(t, err)

	// a retried establishment does not grow the index
	if assert.Len(t, doc.References, 1) {
		assert.Equal(t, []string{chatID}, doc.References[0].Instance)
	}
}

func TestRegisterKeepsForeignRegistrations(t *testing.T) {
	doc := core.TypeIndexDocument{
		References: []core.TypeRegistration{
			{
				ID:       indexURI + "#bookmarks",
				ForClass: []string{"Bookmark"},
				Instance: []string{"https://alice.example/bookmarks.ttl#it"},
			},
		},
	}

	err := registerInto(t, &doc, chatID)
	assert.NoError(t, err)

	if assert.Len(t, doc.References, 2) {
		assert.Equal(t, []string{"Bookmark"}, doc.References[0].ForClass)
		assert.Equal(t, []string{core.TypeLongChat}, doc.References[1].ForClass)
	}
}
