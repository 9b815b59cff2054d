package telephones

import (
	"context"
	"net/http"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/platform/turnaicash"
)

// The upstream router only matches this collection with trailing slashes.
const (
	resource     = "telephones"
	upstreamPath = "/mobcash/user-phone/"
)

type Service interface {
	List(ctx context.Context, token string) (*turnaicash.Page[Telephone], error)
	Create(ctx context.Context, token string, input Input) (*Telephone, error)
	Update(ctx context.Context, token, id string, input Input) (*Telephone, error)
	Delete(ctx context.Context, token, id string) error
}

type service struct {
	client *turnaicash.Client
	cache  *cache.Service
}

func NewService(client *turnaicash.Client, cacheService *cache.Service) Service {
	return &service{client: client, cache: cacheService}
}

func (s *service) List(ctx context.Context, token string) (*turnaicash.Page[Telephone], error) {
	var page turnaicash.Page[Telephone]
	key := cache.QueryKey(resource, token, nil)

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, upstreamPath, nil, nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[Telephone](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *service) Create(ctx context.Context, token string, input Input) (*Telephone, error) {
	var created Telephone
	if err := s.client.Do(ctx, token, http.MethodPost, upstreamPath, nil, input, &created); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &created, nil
}

func (s *service) Update(ctx context.Context, token, id string, input Input) (*Telephone, error) {
	var updated Telephone
	if err := s.client.Do(ctx, token, http.MethodPatch, upstreamPath+id+"/", nil, input, &updated); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, token, id string) error {
	if err := s.client.Do(ctx, token, http.MethodDelete, upstreamPath+id+"/", nil, nil, nil); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateResource(ctx, resource); err != nil {
		logger.Warn().Err(err).Str("resource", resource).Msg("Cache invalidation failed")
	}
}
