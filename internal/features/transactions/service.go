package transactions

import (
	"context"
	"net/http"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/platform/turnaicash"
)

const (
	resource = "transactions"

	historyPath    = "/mobcash/transaction-history"
	depositPath    = "/mobcash/transaction-deposit"
	withdrawalPath = "/mobcash/transaction-withdrawal"
	changePath     = "/mobcash/change-transaction"
	changeBotPath  = "/mobcash/change-bot-transaction"
)

type Service interface {
	List(ctx context.Context, token string, filters Filters) (*turnaicash.Page[Transaction], error)
	CreateDeposit(ctx context.Context, token string, input DepositInput) (*Transaction, error)
	CreateWithdrawal(ctx context.Context, token string, input WithdrawalInput) (*Transaction, error)
	ChangeStatus(ctx context.Context, token string, input ChangeStatusInput) error
	ChangeBotStatus(ctx context.Context, token string, input ChangeBotStatusInput) error
}

type service struct {
	client *turnaicash.Client
	cache  *cache.Service
}

func NewService(client *turnaicash.Client, cacheService *cache.Service) Service {
	return &service{client: client, cache: cacheService}
}

func (s *service) List(ctx context.Context, token string, filters Filters) (*turnaicash.Page[Transaction], error) {
	var page turnaicash.Page[Transaction]
	key := cache.QueryKey(resource, token, filters.Map())

	err := s.cache.GetOrSet(ctx, key, &page, func() (interface{}, error) {
		raw, err := s.client.DoRaw(ctx, token, http.MethodGet, historyPath, turnaicash.Params(filters.Map()), nil)
		if err != nil {
			return nil, err
		}
		return turnaicash.DecodeList[Transaction](raw)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateDeposit submits a manual deposit on behalf of a player. The upstream
// initiates the mobile-money collection; the gateway only reports the row it
// got back.
func (s *service) CreateDeposit(ctx context.Context, token string, input DepositInput) (*Transaction, error) {
	var created Transaction
	if err := s.client.Do(ctx, token, http.MethodPost, depositPath, nil, input, &created); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	logger.Info().Str("reference", created.Reference).Float64("amount", input.Amount).Msg("Deposit created")
	return &created, nil
}

func (s *service) CreateWithdrawal(ctx context.Context, token string, input WithdrawalInput) (*Transaction, error) {
	var created Transaction
	if err := s.client.Do(ctx, token, http.MethodPost, withdrawalPath, nil, input, &created); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	logger.Info().Str("reference", created.Reference).Float64("amount", input.Amount).Msg("Withdrawal created")
	return &created, nil
}

func (s *service) ChangeStatus(ctx context.Context, token string, input ChangeStatusInput) error {
	if err := s.client.Do(ctx, token, http.MethodPost, changePath, nil, input, nil); err != nil {
		return err
	}
	s.invalidate(ctx)
	logger.Info().Str("reference", input.Reference).Str("status", input.Status).Msg("Transaction status changed")
	return nil
}

func (s *service) ChangeBotStatus(ctx context.Context, token string, input ChangeBotStatusInput) error {
	if err := s.client.Do(ctx, token, http.MethodPost, changeBotPath, nil, input, nil); err != nil {
		return err
	}
	s.invalidate(ctx)
	logger.Info().Str("reference", input.Reference).Str("status", input.Status).Msg("Bot transaction status changed")
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateResource(ctx, resource); err != nil {
		logger.Warn().Err(err).Str("resource", resource).Msg("Cache invalidation failed")
	}
}
