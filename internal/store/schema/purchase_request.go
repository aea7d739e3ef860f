package schema

import (
	"time"

	"github.com/veilart/market-ledger/internal/domain"
)

// PurchaseRequest represents the purchase_requests table - an offer from a
// buyer against a listed collectible, with the offer amount held in escrow
// until the request reaches a terminal state.
//
// State transitions exactly once from pending to approved or rejected.
// Settlement and SettledAt are written in the same transaction that makes
// the state terminal, so "escrow moved exactly once" is auditable.
type PurchaseRequest struct {
	// ID is the request ID: monotonically assigned, never reused
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectibleID references the target collectible
	CollectibleID uint64 `gorm:"column:collectible_id;not null;index:idx_purchase_requests_collectible"`
	// Buyer is the offering principal; differs from the owner at creation time
	Buyer domain.Principal `gorm:"column:buyer;not null;type:text;index:idx_purchase_requests_buyer"`
	// OfferAmount is the escrowed value (numeric string, up to 78 digits)
	OfferAmount domain.Amount `gorm:"column:offer_amount;not null;type:numeric(78,0)"`
	// State is pending, approved or rejected
	State domain.RequestState `gorm:"column:state;not null;type:text;index:idx_purchase_requests_state"`
	// Settlement records where the escrow went: payout or refund; nil while pending
	Settlement *domain.Settlement `gorm:"column:settlement;type:text"`
	// SettledAt is when the request reached its terminal state; nil while pending
	SettledAt *time.Time `gorm:"column:settled_at;type:timestamptz"`
	// CreatedAt is the request creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`

	// Associations
	Collectible Collectible `gorm:"foreignKey:CollectibleID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the PurchaseRequest model
func (PurchaseRequest) TableName() string {
	return "purchase_requests"
}
