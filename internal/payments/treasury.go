package payments

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veilart/market-ledger/internal/domain"
	"github.com/veilart/market-ledger/internal/store/schema"
)

// Treasury is the value-transfer primitive the negotiation engine settles
// escrow through. Transfer and credit take the enclosing transaction handle
// so a failed move rolls back the whole ledger operation.
//
//go:generate mockgen -source=treasury.go -destination=../mocks/treasury.go -package=mocks -mock_names=Treasury=MockTreasury
type Treasury interface {
	// Transfer moves amount from one account to another inside tx.
	// Returns domain.ErrInsufficientFunds when the source cannot cover it.
	Transfer(tx *gorm.DB, from, to domain.Principal, amount domain.Amount) error
	// Deposit credits an account outside any ledger operation.
	Deposit(ctx context.Context, principal domain.Principal, amount domain.Amount) error
	// Balance reads an account's available value; unknown accounts hold zero.
	Balance(ctx context.Context, principal domain.Principal) (domain.Amount, error)
}

type pgTreasury struct {
	db *gorm.DB
}

// NewTreasury creates a treasury over the shared database
func NewTreasury(db *gorm.DB) Treasury {
	return &pgTreasury{db: db}
}

// Transfer moves amount between accounts with a guarded debit: the UPDATE
// only applies when the source balance covers the amount, so a zero
// rows-affected result means insufficient funds and nothing was changed.
func (t *pgTreasury) Transfer(tx *gorm.DB, from, to domain.Principal, amount domain.Amount) error {
	if !amount.Valid() {
		return domain.ErrInvalidAmount
	}

	res := tx.Model(&schema.Account{}).
		Where("principal = ? AND balance >= ?::numeric", from, string(amount)).
		Update("balance", gorm.Expr("balance - ?::numeric", string(amount)))
	if res.Error != nil {
		return fmt.Errorf("failed to debit %s: %w", from, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientFunds
	}

	if err := credit(tx, to, amount); err != nil {
		return fmt.Errorf("failed to credit %s: %w", to, err)
	}

	return nil
}

// Deposit credits an account in its own transaction.
func (t *pgTreasury) Deposit(ctx context.Context, principal domain.Principal, amount domain.Amount) error {
	if !principal.Valid() {
		return domain.ErrInvalidPrincipal
	}
	if !amount.Positive() {
		return domain.ErrInvalidAmount
	}

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := credit(tx, principal, amount); err != nil {
			return fmt.Errorf("failed to credit %s: %w", principal, err)
		}
		return nil
	})
}

// Balance reads an account balance; a missing row reads as zero.
func (t *pgTreasury) Balance(ctx context.Context, principal domain.Principal) (domain.Amount, error) {
	var account schema.Account
	err := t.db.WithContext(ctx).Where("principal = ?", principal).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AmountZero, nil
		}
		return "", fmt.Errorf("failed to get account: %w", err)
	}
	return account.Balance, nil
}

// credit upserts the destination account, adding amount to any existing balance.
func credit(tx *gorm.DB, to domain.Principal, amount domain.Amount) error {
	account := schema.Account{
		Principal: to,
		Balance:   amount,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "principal"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":    gorm.Expr("accounts.balance + EXCLUDED.balance"),
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(&account).Error
}
