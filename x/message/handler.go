package message

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Post(c echo.Context) error
}

type handler struct {
	service      core.MessageService
	notification core.NotificationService
	config       util.Config
}

// NewHandler creates a new handler
func NewHandler(service core.MessageService, notification core.NotificationService, config util.Config) Handler {
	return &handler{service: service, notification: notification, config: config}
}

// Post appends a message to a chat and notifies the counterpart's inbox
func (h handler) Post(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.Post")
	defer span.End()

	var request sendRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}

	if request.Chat == "" || request.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "chat and content are required"})
	}

	sent, err := h.service.Send(ctx, h.config.Pod.WebID, request.Content, request.Chat)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if request.Inbox != "" {
		err = h.notification.Emit(ctx, request.Inbox, h.config.Pod.WebID, sent.MessageID, request.Chat, sent.CreatedAt)
		if err != nil {
			span.RecordError(err)
			return err
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": sent})
}
