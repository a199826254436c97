package message

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

var tracer = otel.Tracer("message")

type service struct {
	store core.StoreService
	clock core.Clock
}

// NewService creates a new message service
func NewService(store core.StoreService, clock core.Clock) core.MessageService {
	return &service{store: store, clock: clock}
}

// Send appends one message to the chat's log document for the current day.
// Messages sent on the same calendar day land in the same document; the day
// document is created on first use when the day rolls over. Exactly one
// store mutation happens and its failure propagates untouched.
func (s *service) Send(ctx context.Context, senderID, body, chatURI string) (core.SentMessage, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Send")
	defer span.End()

	container, err := util.ParentContainer(chatURI)
	if err != nil {
		span.RecordError(err)
		return core.SentMessage{}, err
	}

	now := s.clock.Now()
	todayChat := util.DayDocument(container, now)
	messageID := todayChat + "#msg-" + util.NewID()

	err = s.store.UpdateChat(ctx, todayChat, func(chat *core.Chat) error {
		chat.Messages = append(chat.Messages, core.Message{
			ID:      messageID,
			Created: now,
			Content: body,
			Maker:   senderID,
		})
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return core.SentMessage{}, err
	}

	return core.SentMessage{
		MessageID: messageID,
		TodayChat: todayChat,
		CreatedAt: now,
	}, nil
}
