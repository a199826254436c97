//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

const (
	defaultTimeout = 10 * time.Second
	contentType    = "application/ld+json"
	tokenLifetime  = 5 * time.Minute
)

var tracer = otel.Tracer("client")

// Client is the authenticated fetch against pods. Session credentials are
// attached to every request; timeouts and transport errors surface verbatim.
type Client interface {
	Get(ctx context.Context, uri string, out any) error
	Put(ctx context.Context, uri string, body any, create bool) error
	Post(ctx context.Context, container string, body any) (string, error)
	Head(ctx context.Context, uri string) (http.Header, error)
	Delete(ctx context.Context, uri string) error
}

type client struct {
	config util.Config
}

// NewClient creates a new pod client
func NewClient(config util.Config) Client {
	return &client{config: config}
}

func (c *client) httpClient() *http.Client {
	return &http.Client{
		Timeout:   defaultTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// token mints a short-lived bearer token from the configured session key.
func (c *client) token() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    c.config.Pod.WebID,
		Subject:   c.config.Pod.WebID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.config.Pod.SessionKey))
}

func (c *client) newRequest(ctx context.Context, method, uri string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return nil, err
	}

	token, err := c.token()
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint session token")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return req, nil
}

func (c *client) Get(ctx context.Context, uri string, out any) error {
	ctx, span := tracer.Start(ctx, "Client.Get")
	defer span.End()

	req, err := c.newRequest(ctx, "GET", uri, nil)
	if err != nil {
		span.RecordError(err)
		return err
	}
	req.Header.Set("Accept", contentType)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return core.NewErrorNotFound()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d reading %s", resp.StatusCode, uri)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to decode document")
	}

	return nil
}

func (c *client) Put(ctx context.Context, uri string, body any, create bool) error {
	ctx, span := tracer.Start(ctx, "Client.Put")
	defer span.End()

	payload, err := json.Marshal(body)
	if err != nil {
		span.RecordError(err)
		return err
	}

	req, err := c.newRequest(ctx, "PUT", uri, bytes.NewBuffer(payload))
	if err != nil {
		span.RecordError(err)
		return err
	}
	req.Header.Set("Content-Type", contentType)
	if create {
		req.Header.Set("If-None-Match", "*")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d writing %s", resp.StatusCode, uri)
	}

	return nil
}

func (c *client) Post(ctx context.Context, container string, body any) (string, error) {
	ctx, span := tracer.Start(ctx, "Client.Post")
	defer span.End()

	payload, err := json.Marshal(body)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	req, err := c.newRequest(ctx, "POST", container, bytes.NewBuffer(payload))
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d posting to %s", resp.StatusCode, container)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", nil
	}

	base, err := url.Parse(container)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	ref, err := url.Parse(location)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return base.ResolveReference(ref).String(), nil
}

func (c *client) Head(ctx context.Context, uri string) (http.Header, error) {
	ctx, span := tracer.Start(ctx, "Client.Head")
	defer span.End()

	req, err := c.newRequest(ctx, "HEAD", uri, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, core.NewErrorNotFound()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d probing %s", resp.StatusCode, uri)
	}

	return resp.Header, nil
}

func (c *client) Delete(ctx context.Context, uri string) error {
	ctx, span := tracer.Start(ctx, "Client.Delete")
	defer span.End()

	req, err := c.newRequest(ctx, "DELETE", uri, nil)
	if err != nil {
		span.RecordError(err)
		return err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return core.NewErrorNotFound()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d deleting %s", resp.StatusCode, uri)
	}

	return nil
}
