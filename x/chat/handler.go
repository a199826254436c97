package chat

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Establish(c echo.Context) error
	Get(c echo.Context) error
}

type handler struct {
	service core.ChatService
	config  util.Config
}

// NewHandler creates a new handler
func NewHandler(service core.ChatService, config util.Config) Handler {
	return &handler{service: service, config: config}
}

// Establish creates a new chat with another person
func (h handler) Establish(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Chat.Handler.Establish")
	defer span.End()

	var request establishRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}

	if request.OtherPerson == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "otherPerson is required"})
	}

	established, err := h.service.Establish(
		ctx,
		h.config.Pod.WebID,
		request.OtherPerson,
		request.OtherChat,
		h.config.Pod.HospexContainer,
		h.config.Pod.PrivateTypeIndex,
	)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": established})
}

// Get returns a chat document
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Chat.Handler.Get")
	defer span.End()

	uri := c.QueryParam("uri")
	if uri == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "uri is required"})
	}

	chat, err := h.service.Get(ctx, uri)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": chat})
}
