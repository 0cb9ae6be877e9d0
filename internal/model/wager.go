package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Wager represents a group wager created by a user.
type Wager struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index:idx_wagers_user_created,priority:1"`
	GroupName   string          `json:"group_name" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	StartDate   datatypes.Date  `json:"start_date" gorm:"not null"`
	EndDate     datatypes.Date  `json:"end_date" gorm:"not null"`
	Payout      string          `json:"payout" gorm:"size:255;not null"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index:idx_wagers_user_created,priority:2"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Members []WagerMember `json:"members,omitempty" gorm:"foreignKey:WagerID"`
}

// BeforeCreate sets UUID before creating the record.
func (w *Wager) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// MemberEmails flattens the member rows into their email list.
func (w *Wager) MemberEmails() []string {
	emails := make([]string, 0, len(w.Members))
	for _, m := range w.Members {
		emails = append(emails, m.Email)
	}
	return emails
}

// WagerMember is one invited participant of a wager. The email is free text
// and is not required to belong to a registered user.
type WagerMember struct {
	ID      uint      `json:"-" gorm:"primaryKey"`
	WagerID uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	Email   string    `json:"email" gorm:"size:255;not null"`
}
