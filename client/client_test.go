package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

const (
	webID      = "https://alice.example/profile/card#me"
	sessionKey = "unittest-session-key"
)

func newTestClient() Client {
	return NewClient(util.Config{
		Pod: util.Pod{
			WebID:      webID,
			SessionKey: sessionKey,
		},
	})
}

func TestRequestsCarrySessionToken(t *testing.T) {
	ctx := context.Background()

	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	var out map[string]any
	err := newTestClient().Get(ctx, server.URL+"/doc", &out)
	assert.NoError(t, err)

	if assert.True(t, strings.HasPrefix(authorization, "Bearer ")) {
		raw := strings.TrimPrefix(authorization, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return []byte(sessionKey), nil
		})
		if assert.NoError(t, err) {
			subject, err := token.Claims.GetSubject()
			assert.NoError(t, err)
			assert.Equal(t, webID, subject)
		}
	}
}

func TestGetNotFound(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	var out map[string]any
	err := newTestClient().Get(ctx, server.URL+"/missing", &out)
	if assert.Error(t, err) {
		assert.IsType(t, core.ErrorNotFound{}, err)
	}
}

func TestPutCreateSetsIfNoneMatch(t *testing.T) {
	ctx := context.Background()

	var ifNoneMatch []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ifNoneMatch = append(ifNoneMatch, r.Header.Get("If-None-Match"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := newTestClient()
	err := c.Put(ctx, server.URL+"/doc", map[string]string{"a": "b"}, true)
	assert.NoError(t, err)
	err = c.Put(ctx, server.URL+"/doc", map[string]string{"a": "b"}, false)
	assert.NoError(t, err)

	assert.Equal(t, []string{"*", ""}, ifNoneMatch)
}

func TestPostResolvesLocation(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/inbox/doc-1")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	location, err := newTestClient().Post(ctx, server.URL+"/inbox/", map[string]string{})
	if assert.NoError(t, err) {
		assert.Equal(t, server.URL+"/inbox/doc-1", location)
	}
}

func TestHeadReturnsHeaders(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", "<.acl>; rel=\"acl\"")
	}))
	defer server.Close()

	header, err := newTestClient().Head(ctx, server.URL+"/container/")
	if assert.NoError(t, err) {
		assert.Equal(t, "<.acl>; rel=\"acl\"", header.Get("Link"))
	}
}
