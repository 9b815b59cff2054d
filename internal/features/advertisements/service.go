package advertisements

import (
	"context"
	"net/http"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/common/images"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/platform/turnaicash"
)

const (
	resource     = "advertisements"
	upstreamPath = "/mobcash/ann"
)

type Service interface {
	List(ctx context.Context, token string, filters Filters) (*turnaicash.Page[Advertisement], error)
	Create(ctx context.Context, token string, input Input) (*Advertisement, error)
	Update(ctx context.Context, token, id string, patch Patch) (*Advertisement, error)
	Delete(ctx context.Context, token, id string) error
}

type service struct {
	client *turnaicash.Client
	cache  *cache.Service
}

func NewService(client *turnaicash.Client, cacheService *cache.Service) Service {
	return &service{client: client, cache: cacheService}
}

func (s *service) List(ctx context.Context, token string, filters Filters) (*turnaicash.Page[Advertisement], error) {
	var page turnaicash.Page[Advertisement]
	key := cache.QueryKey(resource, token, filters.Map())

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, upstreamPath, turnaicash.Params(filters.Map()), nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[Advertisement](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *service) Create(ctx context.Context, token string, input Input) (*Advertisement, error) {
	if err := images.ValidateField("image", input.Image); err != nil {
		return nil, err
	}

	var created Advertisement
	if err := s.client.Do(ctx, token, http.MethodPost, upstreamPath, nil, input, &created); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &created, nil
}

func (s *service) Update(ctx context.Context, token, id string, patch Patch) (*Advertisement, error) {
	if patch.Image != nil {
		if err := images.ValidateField("image", *patch.Image); err != nil {
			return nil, err
		}
	}

	var updated Advertisement
	if err := s.client.Do(ctx, token, http.MethodPatch, upstreamPath+"/"+id, nil, patch, &updated); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, token, id string) error {
	if err := s.client.Do(ctx, token, http.MethodDelete, upstreamPath+"/"+id, nil, nil, nil); err != nil {
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
