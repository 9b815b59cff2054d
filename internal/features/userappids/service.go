package userappids

import (
	"context"
	stderrors "errors"
	"net/http"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/common/errors"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/platform/partner"
	"turnaicash-admin/internal/platform/turnaicash"
)

const (
	resource     = "userappids"
	upstreamPath = "/mobcash/user-app-id/"
)

type Service interface {
	List(ctx context.Context, token string) (*turnaicash.Page[UserAppID], error)
	Create(ctx context.Context, token string, input Input) (*UserAppID, error)
	Update(ctx context.Context, token, id string, input Input) (*UserAppID, error)
	Delete(ctx context.Context, token, id string) error
}

type service struct {
	client    *turnaicash.Client
	cache     *cache.Service
	validator partner.UserValidator
}

func NewService(client *turnaicash.Client, cacheService *cache.Service, validator partner.UserValidator) Service {
	return &service{client: client, cache: cacheService, validator: validator}
}

func (s *service) List(ctx context.Context, token string) (*turnaicash.Page[UserAppID], error) {
	var page turnaicash.Page[UserAppID]
	key := cache.QueryKey(resource, token, nil)

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, upstreamPath, nil, nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[UserAppID](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Create first checks the account on the payment partner's side: the player
// must exist and be registered on the expected currency. Only a confirmed
// account reaches the upstream; the partner's verdict is final and is never
// retried here.
func (s *service) Create(ctx context.Context, token string, input Input) (*UserAppID, error) {
	player, err := s.validator.ValidateUser(ctx, input.UserAppID)
	if err != nil {
		return nil, mapPartnerError(input.UserAppID, err)
	}
	logger.Info().Str("user_app_id", input.UserAppID).Str("player", player.Name).Msg("Partner account confirmed")

	var created UserAppID
	if err := s.client.Do(ctx, token, http.MethodPost, upstreamPath, nil, input, &created); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &created, nil
}

func (s *service) Update(ctx context.Context, token, id string, input Input) (*UserAppID, error) {
	var updated UserAppID
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

func mapPartnerError(userAppID string, err error) error {
	switch {
	case stderrors.Is(err, partner.ErrPlayerNotFound):
		return errors.New(errors.ErrCodePlayerNotFound, "Player account not found").
			WithField("user_app_id", "no player with this id on the partner side")
	case stderrors.Is(err, partner.ErrWrongCurrency):
		return errors.New(errors.ErrCodeWrongCurrency, "Player registered on another currency").
			WithField("user_app_id", "player account uses an unsupported currency")
	default:
		return errors.NewPartnerError("validate user "+userAppID, err)
	}
}
