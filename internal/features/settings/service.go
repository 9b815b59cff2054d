package settings

import (
	"context"
	"net/http"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/platform/turnaicash"
)

const (
	resource     = "settings"
	upstreamPath = "/mobcash/setting"
)

type Service interface {
	Get(ctx context.Context, token string) (*Settings, error)
	Update(ctx context.Context, token string, patch Patch) (*Settings, error)
}

type service struct {
	client *turnaicash.Client
	cache  *cache.Service
}

func NewService(client *turnaicash.Client, cacheService *cache.Service) Service {
	return &service{client: client, cache: cacheService}
}

// Get returns the one settings object. Cached under the empty filter key
// like any other query.
func (s *service) Get(ctx context.Context, token string) (*Settings, error) {
	var settings Settings
	key := cache.QueryKey(resource, token, nil)

	err := s.cache.GetOrSet(ctx, key, &settings, func() (interface{}, error) {
		var fetched Settings
		if err := s.client.Do(ctx, token, http.MethodGet, upstreamPath, nil, nil, &fetched); err != nil {
			return nil, err
		}
		return &fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *service) Update(ctx context.Context, token string, patch Patch) (*Settings, error) {
	var updated Settings
	if err := s.client.Do(ctx, token, http.MethodPatch, upstreamPath, nil, patch, &updated); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateResource(ctx, resource); err != nil {
		logger.Warn().Err(err).Str("resource", resource).Msg("Cache invalidation failed")
	}
	return &updated, nil
}
