package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/veilart/market-ledger/internal/domain"
)

// ProvenanceEntry represents the provenance_entries table - the append-only
// ownership transfer history per collectible. Rows are never updated,
// deleted or reordered; reading back in ID order yields the audit trail.
type ProvenanceEntry struct {
	// ID is the internal database primary key; insertion order is append order
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectibleID references the collectible this transfer belongs to
	CollectibleID uint64 `gorm:"column:collectible_id;not null;index:idx_provenance_entries_collectible"`
	// FromOwner is the owner before the transfer
	FromOwner domain.Principal `gorm:"column:from_owner;not null;type:text"`
	// ToOwner is the owner after the transfer
	ToOwner domain.Principal `gorm:"column:to_owner;not null;type:text"`
	// RequestID is the approved purchase request that caused the transfer
	RequestID uint64 `gorm:"column:request_id;not null;uniqueIndex:uq_provenance_entries_request"`
	// Price is the settled offer amount
	Price domain.Amount `gorm:"column:price;not null;type:numeric(78,0)"`
	// Timestamp is when the transfer was committed
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// Raw carries the full event payload as JSON for audit tooling
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Collectible Collectible `gorm:"foreignKey:CollectibleID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the ProvenanceEntry model
func (ProvenanceEntry) TableName() string {
	return "provenance_entries"
}
