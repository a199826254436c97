package notification

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Process(c echo.Context) error
}

type handler struct {
	service core.NotificationService
	config  util.Config
}

// NewHandler creates a new handler
func NewHandler(service core.NotificationService, config util.Config) Handler {
	return &handler{service: service, config: config}
}

// List returns the notifications waiting in the configured inbox
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Notification.Handler.List")
	defer span.End()

	uris, err := h.service.List(ctx, h.config.Pod.Inbox)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": uris})
}

// Get returns one notification document
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Notification.Handler.Get")
	defer span.End()

	uri := c.QueryParam("uri")
	if uri == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "uri is required"})
	}

	notification, err := h.service.Fetch(ctx, uri)
	if err != nil {
		span.RecordError(err)
		var notFound core.ErrorNotFound
		if errors.As(err, &notFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": notification})
}

// Process consumes a notification: link the remote chat, delete the inbox entry
func (h handler) Process(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Notification.Handler.Process")
	defer span.End()

	var request processRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}

	if request.Notification == "" || request.Chat == "" || request.OtherChat == "" || request.OtherPerson == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "notification, chat, otherChat and otherPerson are required"})
	}

	err = h.service.Process(ctx, request.Notification, request.Chat, request.OtherChat, request.OtherPerson)
	if err != nil {
		span.RecordError(err)
		switch err.(type) {
		case core.ErrorNoParticipation, core.ErrorTooMuchParticipation,
			core.ErrorParticipationNotFound, core.ErrorAlreadyReferenced:
			return c.JSON(http.StatusConflict, echo.Map{"status": "error", "error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
