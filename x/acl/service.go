package acl

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/peterhellberg/link"
	"go.opentelemetry.io/otel"

	"github.com/mrkvon/sleepy.bike/client"
	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

var tracer = otel.Tracer("acl")

const (
	aclRel = "acl"

	cacheExpiration = 10 * time.Minute
	cacheCleanup    = 30 * time.Minute
)

type service struct {
	client client.Client
	store  core.StoreService
	cache  *cache.Cache
}

// NewService creates a new acl service
func NewService(client client.Client, store core.StoreService) core.AclService {
	return &service{
		client: client,
		store:  store,
		cache:  cache.New(cacheExpiration, cacheCleanup),
	}
}

// Discover resolves the access-control resource of a container via the acl
// link relation. A missing acl link is an unrecoverable configuration error.
func (s *service) Discover(ctx context.Context, uri string) (string, error) {
	ctx, span := tracer.Start(ctx, "Acl.Service.Discover")
	defer span.End()

	if cached, ok := s.cache.Get(uri); ok {
		return cached.(string), nil
	}

	header, err := s.client.Head(ctx, uri)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	l, ok := link.ParseHeader(header)[aclRel]
	if !ok {
		err := core.NewErrorAclNotFound()
		span.RecordError(err)
		return "", err
	}

	resolved, err := util.ResolveReference(uri, l.URI)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	s.cache.Set(uri, resolved, cache.DefaultExpiration)

	return resolved, nil
}

// Provision writes the two access grants of a fresh chat container: full
// control for the owner, read-only for the counterpart. Both grants cover the
// container and its children via default.
func (s *service) Provision(ctx context.Context, aclURI, container, owner, counterpart string) error {
	ctx, span := tracer.Start(ctx, "Acl.Service.Provision")
	defer span.End()

	err := s.store.UpdateACL(ctx, aclURI, func(doc *core.AccessControlDocument) error {
		doc.Authorization = append(doc.Authorization,
			core.AccessGrant{
				ID:       aclURI + "#" + util.NewID(),
				Agent:    []string{owner},
				AccessTo: []string{container},
				Default:  []string{container},
				Mode:     []string{core.ModeRead, core.ModeWrite, core.ModeControl},
			},
			core.AccessGrant{
				ID:       aclURI + "#" + util.NewID(),
				Agent:    []string{counterpart},
				AccessTo: []string{container},
				Default:  []string{container},
				Mode:     []string{core.ModeRead},
			},
		)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
