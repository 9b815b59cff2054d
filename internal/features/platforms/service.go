package platforms

import (
	"context"
	"net/http"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/common/errors"
	"turnaicash-admin/internal/common/images"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/platform/turnaicash"
)

const (
	resource     = "platforms"
	upstreamPath = "/mobcash/plateform"
)

type Service interface {
	List(ctx context.Context, token string) (*turnaicash.Page[Platform], error)
	Create(ctx context.Context, token string, input Input) (*Platform, error)
	Update(ctx context.Context, token, id string, patch Patch) (*Platform, error)
	Delete(ctx context.Context, token, id string) error
}

type service struct {
	client *turnaicash.Client
	cache  *cache.Service
}

func NewService(client *turnaicash.Client, cacheService *cache.Service) Service {
	return &service{client: client, cache: cacheService}
}

// List fetches the platform collection. The upstream answers this endpoint
// with either a bare array or a pagination envelope depending on deploy;
// DecodeList normalizes both.
func (s *service) List(ctx context.Context, token string) (*turnaicash.Page[Platform], error) {
	var page turnaicash.Page[Platform]
	key := cache.QueryKey(resource, token, nil)

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, upstreamPath, nil, nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[Platform](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *service) Create(ctx context.Context, token string, input Input) (*Platform, error) {
	if err := validateLimits(input); err != nil {
		return nil, err
	}
	if err := images.ValidateField("image", input.Image); err != nil {
		return nil, err
	}

	var created Platform
	if err := s.client.Do(ctx, token, http.MethodPost, upstreamPath, nil, input, &created); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	logger.Info().Str("platform", created.Name).Msg("Platform created")
	return &created, nil
}

func (s *service) Update(ctx context.Context, token, id string, patch Patch) (*Platform, error) {
	if patch.Image != nil {
		if err := images.ValidateField("image", *patch.Image); err != nil {
			return nil, err
		}
	}
	if patch.MinimunDeposit != nil && *patch.MinimunDeposit <= 0 {
		return nil, errors.NewValidationError("minimun_deposit", "must be positive")
	}

	var updated Platform
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

func validateLimits(input Input) error {
	if input.MaxDeposit < input.MinimunDeposit {
		return errors.NewValidationError("max_deposit", "must be greater than or equal to minimun_deposit")
	}
	return nil
}
