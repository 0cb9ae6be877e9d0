package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stonks/internal/model"
)

// WagerRepository defines wager persistence operations.
type WagerRepository interface {
	// CreateWithMembers inserts the wager row and all of its member rows in a
	// single transaction. A failed member insert rolls back the wager row.
	CreateWithMembers(ctx context.Context, wager *model.Wager, members []model.WagerMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Wager, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Wager, error)
}

type wagerRepository struct {
	db *gorm.DB
}

// NewWagerRepository creates a new wager repository.
func NewWagerRepository(db *gorm.DB) WagerRepository {
	return &wagerRepository{db: db}
}

func (r *wagerRepository) CreateWithMembers(ctx context.Context, wager *model.Wager, members []model.WagerMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(wager).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].WagerID = wager.ID
		}
		if err := tx.Create(&members).Error; err != nil {
			return err
		}
		wager.Members = members
		return nil
	})
}

func (r *wagerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Wager, error) {
	var wager model.Wager
	if err := r.db.WithContext(ctx).Preload("Members").
		Where("id = ?", id).First(&wager).Error; err != nil {
		return nil, err
	}
	return &wager, nil
}

// ListByOwner returns the user's wagers newest first with members preloaded.
func (r *wagerRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Wager, error) {
	wagers := []model.Wager{}
	if err := r.db.WithContext(ctx).Preload("Members").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&wagers).Error; err != nil {
		return nil, err
	}
	return wagers, nil
}
