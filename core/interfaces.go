//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"time"
)

type ChatService interface {
	Establish(ctx context.Context, me, otherPerson, otherChat, hospexContainer, privateTypeIndex string) (EstablishedChat, error)
	Get(ctx context.Context, uri string) (Chat, error)
}

type MessageService interface {
	Send(ctx context.Context, senderID, body, chatURI string) (SentMessage, error)
}

type NotificationService interface {
	Emit(ctx context.Context, inbox, senderID, messageID, chatID string, updated time.Time) error
	Process(ctx context.Context, notificationID, chatURI, otherChatURI, otherPerson string) error
	List(ctx context.Context, inbox string) ([]string, error)
	Fetch(ctx context.Context, id string) (Notification, error)
}

type AclService interface {
	Discover(ctx context.Context, uri string) (string, error)
	Provision(ctx context.Context, aclURI, container, owner, counterpart string) error
}

type TypeIndexService interface {
	Register(ctx context.Context, indexURI, forClass, instance string) error
}

// StoreService performs document mutations against a pod. Update methods are
// read-modify-write: fetch the document (a missing document yields the zero
// value), apply the transform, and persist the result. A transform returning
// an error aborts the update and nothing is written.
type StoreService interface {
	CreateChat(ctx context.Context, uri string, chat Chat) error
	UpdateChat(ctx context.Context, uri string, transform func(*Chat) error) error
	UpdateACL(ctx context.Context, uri string, transform func(*AccessControlDocument) error) error
	UpdateTypeIndex(ctx context.Context, uri string, transform func(*TypeIndexDocument) error) error
	PostToContainer(ctx context.Context, container string, doc any) (string, error)
	GetChat(ctx context.Context, uri string) (Chat, error)
	GetNotification(ctx context.Context, uri string) (Notification, error)
	GetContainer(ctx context.Context, uri string) (ContainerDocument, error)
	Delete(ctx context.Context, uri string) error
}

type Clock interface {
	Now() time.Time
}
