package botusers

import (
	"context"
	"net/http"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/platform/turnaicash"
)

const (
	resource     = "botusers"
	upstreamPath = "/auth/telegram-users-list"
)

type Service interface {
	List(ctx context.Context, token string, filters Filters) (*turnaicash.Page[BotUser], error)
}

type service struct {
	client *turnaicash.Client
	cache  *cache.Service
}

func NewService(client *turnaicash.Client, cacheService *cache.Service) Service {
	return &service{client: client, cache: cacheService}
}

// List is read-only; the upstream answers with a bare array.
func (s *service) List(ctx context.Context, token string, filters Filters) (*turnaicash.Page[BotUser], error) {
	var page turnaicash.Page[BotUser]
	key := cache.QueryKey(resource, token, filters.Map())

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, upstreamPath, turnaicash.Params(filters.Map()), nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[BotUser](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}
