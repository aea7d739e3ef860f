package schema

import (
	"time"

	"github.com/veilart/market-ledger/internal/domain"
)

// Account represents the accounts table - the value-transfer collaborator's
// balance book. The ledger's escrow custody is the reserved principal
// domain.EscrowPrincipal; every escrow move is a balance transfer between
// two rows inside the enclosing ledger transaction.
type Account struct {
	// Principal is the account holder's address
	Principal domain.Principal `gorm:"column:principal;primaryKey;type:text"`
	// Balance is the available value (numeric string, up to 78 digits, never negative)
	Balance domain.Amount `gorm:"column:balance;not null;type:numeric(78,0);default:0;check:balance >= 0"`
	// UpdatedAt is the timestamp of the last balance change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();autoUpdateTime;type:timestamptz"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();autoCreateTime;type:timestamptz"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
