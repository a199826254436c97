package util

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/mrkvon/sleepy.bike/core"
)

// NewID produces a globally-unique opaque identifier.
func NewID() string {
	return xid.New().String()
}

// ParentContainer returns the container a resource lives in, without the
// fragment and with a trailing slash.
func ParentContainer(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	u.Fragment = ""

	p := strings.TrimSuffix(u.Path, "/")
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return "", fmt.Errorf("no parent container for %s", uri)
	}
	u.Path = p[:idx+1]

	return u.String(), nil
}

// DayDocument computes the day-bucketed log document for a chat container.
// Bucketing uses the given time as-is; participants in different timezones
// may bucket the same instant into different documents.
func DayDocument(container string, day time.Time) string {
	return fmt.Sprintf("%s%04d/%02d/%02d/%s", container, day.Year(), int(day.Month()), day.Day(), core.DayDocumentName)
}

// ResolveReference resolves a possibly-relative reference against a base URI.
func ResolveReference(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}
