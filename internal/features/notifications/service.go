package notifications

import (
	"context"
	"net/http"
	"net/url"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/platform/turnaicash"
)

const (
	resource     = "notifications"
	upstreamPath = "/mobcash/notification"
)

type Service interface {
	List(ctx context.Context, token string) (*turnaicash.Page[Notification], error)
	Send(ctx context.Context, token string, input SendInput) error
}

type service struct {
	client *turnaicash.Client
	cache  *cache.Service
}

func NewService(client *turnaicash.Client, cacheService *cache.Service) Service {
	return &service{client: client, cache: cacheService}
}

func (s *service) List(ctx context.Context, token string) (*turnaicash.Page[Notification], error) {
	var page turnaicash.Page[Notification]
	key := cache.QueryKey(resource, token, nil)

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, upstreamPath, nil, nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[Notification](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Send posts a notification to one user. The recipient travels as a query
// parameter; title and content travel in the body.
func (s *service) Send(ctx context.Context, token string, input SendInput) error {
	params := url.Values{"user_id": {input.UserID}}
	body := map[string]string{"title": input.Title, "content": input.Content}

	if err := s.client.Do(ctx, token, http.MethodPost, upstreamPath, params, body, nil); err != nil {
		return err
	}

	if err := s.cache.InvalidateResource(ctx, resource); err != nil {
		logger.Warn().Err(err).Str("resource", resource).Msg("Cache invalidation failed")
	}
	logger.Info().Str("user_id", input.UserID).Msg("Notification sent")
	return nil
}
