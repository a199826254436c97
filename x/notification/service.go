package notification

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

var tracer = otel.Tracer("notification")

type service struct {
	store core.StoreService
}

// NewService creates a new notification service
func NewService(store core.StoreService) core.NotificationService {
	return &service{store: store}
}

// Emit posts an Add activity into the recipient's inbox. Delivery is
// fire-and-forget: there is no acknowledgment channel, the recipient
// observes the notification on its own schedule.
func (s *service) Emit(ctx context.Context, inbox, senderID, messageID, chatID string, updated time.Time) error {
	ctx, span := tracer.Start(ctx, "Notification.Service.Emit")
	defer span.End()

	_, err := s.store.PostToContainer(ctx, inbox, core.Notification{
		Type:    core.TypeAdd,
		Actor:   senderID,
		Context: core.ActivityContext,
		Object:  messageID,
		Target:  chatID,
		Updated: updated,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// Process links the remote chat into the local chat's counterpart
// participation, then deletes the consumed notification. The link runs
// first: if the process dies in between, the notification survives for a
// retry. A retry after a successful link fails on the already-references
// guard instead of silently succeeding.
func (s *service) Process(ctx context.Context, notificationID, chatURI, otherChatURI, otherPerson string) error {
	ctx, span := tracer.Start(ctx, "Notification.Service.Process")
	defer span.End()

	err := s.store.UpdateChat(ctx, chatURI, func(chat *core.Chat) error {
		if len(chat.Participation) == 0 {
			return core.NewErrorNoParticipation()
		}
		if len(chat.Participation) > 2 {
			return core.NewErrorTooMuchParticipation()
		}

		index := -1
		for i := range chat.Participation {
			if chat.Participation[i].Participant == otherPerson {
				index = i
				break
			}
		}
		if index < 0 {
			return core.NewErrorParticipationNotFound()
		}

		if len(chat.Participation[index].References) > 0 {
			return core.NewErrorAlreadyReferenced()
		}

		chat.Participation[index].References = []string{otherChatURI}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = s.store.Delete(ctx, notificationID)
	if err != nil {
		span.RecordError(err)
		return err
	}

	slog.InfoContext(ctx, "notification consumed",
		slog.String("notification", notificationID),
		slog.String("module", "notification"),
	)

	return nil
}

// List returns the notification URIs currently sitting in an inbox
func (s *service) List(ctx context.Context, inbox string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Notification.Service.List")
	defer span.End()

	container, err := s.store.GetContainer(ctx, inbox)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uris := make([]string, 0, len(container.Contains))
	for _, contained := range container.Contains {
		resolved, err := util.ResolveReference(inbox, contained)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		uris = append(uris, resolved)
	}

	return uris, nil
}

// Fetch reads one notification document
func (s *service) Fetch(ctx context.Context, id string) (core.Notification, error) {
	ctx, span := tracer.Start(ctx, "Notification.Service.Fetch")
	defer span.End()

	return s.store.GetNotification(ctx, id)
}
