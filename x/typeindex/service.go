package typeindex

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel"

	"github.com/mrkvon/sleepy.bike/core"
	"github.com/mrkvon/sleepy.bike/util"
)

var tracer = otel.Tracer("typeindex")

type service struct {
	store core.StoreService
}

// NewService creates a new typeindex service
func NewService(store core.StoreService) core.TypeIndexService {
	return &service{store: store}
}

// Register records an instance in the type index. An existing registration
// for the class is extended, otherwise a new one is created. Instances are a
// set: registering the same instance twice is a no-op, so a retried
// establishment does not grow the index.
func (s *service) Register(ctx context.Context, indexURI, forClass, instance string) error {
	ctx, span := tracer.Start(ctx, "TypeIndex.Service.Register")
	defer span.End()

	err := s.store.UpdateTypeIndex(ctx, indexURI, func(doc *core.TypeIndexDocument) error {
		for i := range doc.References {
			if !slices.Contains(doc.References[i].ForClass, forClass) {
				continue
			}
			if !slices.Contains(doc.References[i].Instance, instance) {
				doc.References[i].Instance = append(doc.References[i].Instance, instance)
			}
			return nil
		}

		doc.References = append(doc.References, core.TypeRegistration{
			ID:       indexURI + "#" + util.NewID(),
			ForClass: []string{forClass},
			Instance: []string{instance},
		})
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
