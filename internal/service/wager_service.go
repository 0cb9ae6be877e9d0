package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"stonks/internal/cache"
	"stonks/internal/errors"
	"stonks/internal/model"
	"stonks/internal/repository"
)

const (
	wagerDateLayout   = "2006-01-02"
	wagerListCacheTTL = time.Minute
)

// CreateWagerInput carries the validated fields for a new wager.
type CreateWagerInput struct {
	UserID      uuid.UUID
	GroupName   string
	Description string
	Amount      decimal.Decimal
	StartDate   string
	EndDate     string
	Payout      string
	Members     []string
}

// WagerService handles wager creation and listing.
type WagerService interface {
	CreateWager(ctx context.Context, input CreateWagerInput) (*model.Wager, error)
	ListWagersForUser(ctx context.Context, userID uuid.UUID) ([]model.Wager, error)
}

type wagerService struct {
	wagerRepo        repository.WagerRepository
	cache            *cache.Client
	enforceDateOrder bool
}

// NewWagerService creates a new wager service.
func NewWagerService(wagerRepo repository.WagerRepository, cache *cache.Client, enforceDateOrder bool) WagerService {
	return &wagerService{
		wagerRepo:        wagerRepo,
		cache:            cache,
		enforceDateOrder: enforceDateOrder,
	}
}

func (s *wagerService) cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("wagers:%s", userID.String())
}

// CreateWager validates the input and writes the wager row together with its
// member rows in one transaction, so a wager can never exist with zero members.
func (s *wagerService) CreateWager(ctx context.Context, input CreateWagerInput) (*model.Wager, error) {
	if len(input.Members) == 0 {
		return nil, errors.ErrNoMembers
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}

	startDate, err := time.Parse(wagerDateLayout, input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}
	endDate, err := time.Parse(wagerDateLayout, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parse end date: %w", err)
	}
	if s.enforceDateOrder && startDate.After(endDate) {
		return nil, errors.ErrInvalidDateRange
	}

	wager := &model.Wager{
		UserID:      input.UserID,
		GroupName:   input.GroupName,
		Description: input.Description,
		Amount:      input.Amount,
		StartDate:   datatypes.Date(startDate),
		EndDate:     datatypes.Date(endDate),
		Payout:      input.Payout,
	}

	members := make([]model.WagerMember, 0, len(input.Members))
	for _, email := range input.Members {
		members = append(members, model.WagerMember{Email: email})
	}

	if err := s.wagerRepo.CreateWithMembers(ctx, wager, members); err != nil {
		return nil, fmt.Errorf("create wager: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(input.UserID))

	return wager, nil
}

// ListWagersForUser returns the user's wagers newest first, members included.
// Results are cached per owner; CreateWager invalidates the entry.
func (s *wagerService) ListWagersForUser(ctx context.Context, userID uuid.UUID) ([]model.Wager, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached []model.Wager
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	wagers, err := s.wagerRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wagers: %w", err)
	}

	if payload, err := json.Marshal(wagers); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, wagerListCacheTTL)
	}
	return wagers, nil
}
