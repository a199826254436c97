package chat

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

var tracer = otel.Tracer("chat")

type service struct {
	store     core.StoreService
	acl       core.AclService
	typeindex core.TypeIndexService
	clock     core.Clock
}

// NewService creates a new chat service
func NewService(store core.StoreService, acl core.AclService, typeindex core.TypeIndexService, clock core.Clock) core.ChatService {
	return &service{
		store,
		acl,
		typeindex,
		clock,
	}
}

// Establish provisions a new chat between me and otherPerson. The steps run
// sequentially and are not transactional: a failure partway leaves the
// earlier writes in place. Identifiers are freshly generated on every
// attempt, so a retry never collides with a partial prior attempt.
func (s *service) Establish(ctx context.Context, me, otherPerson, otherChat, hospexContainer, privateTypeIndex string) (core.EstablishedChat, error) {
	ctx, span := tracer.Start(ctx, "Chat.Service.Establish")
	defer span.End()

	container := hospexContainer + "messages/" + util.NewID() + "/"
	chatFile := container + core.ChatDocumentName
	chatID := chatFile + core.ChatFragment

	now := s.clock.Now()

	myParticipation := core.Participation{
		ID:          chatFile + "#" + util.NewID(),
		Participant: me,
		DTStart:     now,
	}
	otherParticipation := core.Participation{
		ID:          chatFile + "#" + util.NewID(),
		Participant: otherPerson,
		DTStart:     now,
	}
	if otherChat != "" {
		otherParticipation.References = []string{otherChat}
	}

	err := s.store.CreateChat(ctx, chatFile, core.Chat{
		ID:            chatID,
		Type:          core.TypeLongChat,
		Author:        me,
		Created:       now,
		Title:         core.DefaultChatTitle,
		Participation: []core.Participation{myParticipation, otherParticipation},
	})
	if err != nil {
		span.RecordError(err)
		return core.EstablishedChat{}, err
	}

	aclURI, err := s.acl.Discover(ctx, container)
	if err != nil {
		span.RecordError(err)
		return core.EstablishedChat{}, err
	}

	err = s.acl.Provision(ctx, aclURI, container, me, otherPerson)
	if err != nil {
		span.RecordError(err)
		return core.EstablishedChat{}, err
	}

	err = s.typeindex.Register(ctx, privateTypeIndex, core.TypeLongChat, chatID)
	if err != nil {
		span.RecordError(err)
		return core.EstablishedChat{}, err
	}

	slog.InfoContext(ctx, "chat established",
		slog.String("chat", chatID),
		slog.String("module", "chat"),
	)

	return core.EstablishedChat{
		ChatContainer: container,
		ChatFile:      chatFile,
		ChatID:        chatID,
	}, nil
}

// Get returns a chat by document URI
func (s *service) Get(ctx context.Context, uri string) (core.Chat, error) {
	ctx, span := tracer.Start(ctx, "Chat.Service.Get")
	defer span.End()

	return s.store.GetChat(ctx, uri)
}
