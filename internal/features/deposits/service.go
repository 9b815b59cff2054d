package deposits

import (
	"context"
	"net/http"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/platform/turnaicash"
)

// Read-only reporting endpoints: the deposit ledger and the cash-desk
// balances.
const (
	depositsResource = "deposits"
	caissesResource  = "caisses"

	depositsPath = "/mobcash/list-deposit"
	caissesPath  = "/mobcash/caisses"
)

type Service interface {
	ListDeposits(ctx context.Context, token, betApp string) (*turnaicash.Page[DepositItem], error)
	ListCaisses(ctx context.Context, token string) (*turnaicash.Page[Caisse], error)
}

type service struct {
	client *turnaicash.Client
	cache  *cache.Service
}

func NewService(client *turnaicash.Client, cacheService *cache.Service) Service {
	return &service{client: client, cache: cacheService}
}

func (s *service) ListDeposits(ctx context.Context, token, betApp string) (*turnaicash.Page[DepositItem], error) {
	filters := map[string]string{"bet_app": betApp}

	var page turnaicash.Page[DepositItem]
	key := cache.QueryKey(depositsResource, token, filters)

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, depositsPath, turnaicash.Params(filters), nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[DepositItem](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *service) ListCaisses(ctx context.Context, token string) (*turnaicash.Page[Caisse], error) {
	var page turnaicash.Page[Caisse]
	key := cache.QueryKey(caissesResource, token, nil)

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, caissesPath, nil, nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[Caisse](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}
