package store

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"

	"github.com/mrkvon/sleepy.bike/client"
	"github.com/mrkvon/sleepy.bike/core"
)

var tracer = otel.Tracer("store")

type service struct {
	client client.Client
}

// NewService creates a new store service
func NewService(client client.Client) core.StoreService {
	return &service{client: client}
}

// CreateChat writes a chat document to a fresh URI.
func (s *service) CreateChat(ctx context.Context, uri string, chat core.Chat) error {
	ctx, span := tracer.Start(ctx, "Store.Service.CreateChat")
	defer span.End()

	err := s.client.Put(ctx, uri, chat, true)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// update is the shared read-modify-write. A missing document starts from the
// zero value. A transform error aborts the update before anything is written.
func update[T any](ctx context.Context, c client.Client, uri string, transform func(*T) error) error {
	var doc T
	err := c.Get(ctx, uri, &doc)
	if err != nil {
		var notFound core.ErrorNotFound
		if !errors.As(err, &notFound) {
			return err
		}
	}

	err = transform(&doc)
	if err != nil {
		return err
	}

	return c.Put(ctx, uri, doc, false)
}

func (s *service) UpdateChat(ctx context.Context, uri string, transform func(*core.Chat) error) error {
	ctx, span := tracer.Start(ctx, "Store.Service.UpdateChat")
	defer span.End()

	err := update(ctx, s.client, uri, transform)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (s *service) UpdateACL(ctx context.Context, uri string, transform func(*core.AccessControlDocument) error) error {
	ctx, span := tracer.Start(ctx, "Store.Service.UpdateACL")
	defer span.End()

	err := update(ctx, s.client, uri, transform)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (s *service) UpdateTypeIndex(ctx context.Context, uri string, transform func(*core.TypeIndexDocument) error) error {
	ctx, span := tracer.Start(ctx, "Store.Service.UpdateTypeIndex")
	defer span.End()

	err := update(ctx, s.client, uri, transform)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// PostToContainer creates a new resource inside a container and returns the
// server-assigned URI.
func (s *service) PostToContainer(ctx context.Context, container string, doc any) (string, error) {
	ctx, span := tracer.Start(ctx, "Store.Service.PostToContainer")
	defer span.End()

	location, err := s.client.Post(ctx, container, doc)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return location, nil
}

func (s *service) GetChat(ctx context.Context, uri string) (core.Chat, error) {
	ctx, span := tracer.Start(ctx, "Store.Service.GetChat")
	defer span.End()

	var chat core.Chat
	err := s.client.Get(ctx, uri, &chat)
	if err != nil {
		span.RecordError(err)
		return core.Chat{}, err
	}

	return chat, nil
}

func (s *service) GetNotification(ctx context.Context, uri string) (core.Notification, error) {
	ctx, span := tracer.Start(ctx, "Store.Service.GetNotification")
	defer span.End()

	var notification core.Notification
	err := s.client.Get(ctx, uri, &notification)
	if err != nil {
		span.RecordError(err)
		return core.Notification{}, err
	}

	if notification.ID == "" {
		notification.ID = uri
	}

	return notification, nil
}

func (s *service) GetContainer(ctx context.Context, uri string) (core.ContainerDocument, error) {
	ctx, span := tracer.Start(ctx, "Store.Service.GetContainer")
	defer span.End()

	var container core.ContainerDocument
	err := s.client.Get(ctx, uri, &container)
	if err != nil {
		span.RecordError(err)
		return core.ContainerDocument{}, err
	}

	return container, nil
}

func (s *service) Delete(ctx context.Context, uri string) error {
	ctx, span := tracer.Start(ctx, "Store.Service.Delete")
	defer span.End()

	err := s.client.Delete(ctx, uri)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
