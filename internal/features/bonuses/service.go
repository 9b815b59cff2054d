package bonuses

import (
	"context"
	"net/http"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/platform/turnaicash"
)

const (
	resource     = "bonuses"
	upstreamPath = "/mobcash/bonus"
)

type Service interface {
	List(ctx context.Context, token string, filters Filters) (*turnaicash.Page[Bonus], error)
}

type service struct {
	client *turnaicash.Client
	cache  *cache.Service
}

func NewService(client *turnaicash.Client, cacheService *cache.Service) Service {
	return &service{client: client, cache: cacheService}
}

// List is read-only; bonuses are granted by the upstream's own rules.
func (s *service) List(ctx context.Context, token string, filters Filters) (*turnaicash.Page[Bonus], error) {
	var page turnaicash.Page[Bonus]
	key := cache.QueryKey(resource, token, filters.Map())

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, upstreamPath, turnaicash.Params(filters.Map()), nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[Bonus](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}
