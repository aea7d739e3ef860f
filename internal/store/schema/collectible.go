package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/veilart/market-ledger/internal/domain"
)

// Collectible represents the collectibles table - the primary entity of the
// marketplace ledger. A row is created exactly once by listing and is never
// deleted; Owner is the only mutable column and changes only through an
// approved purchase.
type Collectible struct {
	// ID is the token ID: monotonically assigned, never reused
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Owner is the current owner's address
	Owner domain.Principal `gorm:"column:owner;not null;type:text;index:idx_collectibles_owner"`
	// Name is the immutable public display name, set at listing time
	Name string `gorm:"column:name;not null;type:text"`
	// ImageURI is the immutable public image reference, set at listing time
	ImageURI string `gorm:"column:image_uri;not null;type:text"`
	// PriceHandle references the encrypted asking price in the vault
	PriceHandle uuid.UUID `gorm:"column:price_handle;not null;type:uuid"`
	// CertHandle references the encrypted authenticity certificate in the vault
	CertHandle uuid.UUID `gorm:"column:cert_handle;not null;type:uuid"`
	// SerialHandle references the encrypted serial number in the vault
	SerialHandle uuid.UUID `gorm:"column:serial_handle;not null;type:uuid"`
	// OriginHandle references the encrypted origin record in the vault
	OriginHandle uuid.UUID `gorm:"column:origin_handle;not null;type:uuid"`
	// ListedAt is the listing timestamp
	ListedAt time.Time `gorm:"column:listed_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	PurchaseRequests  []PurchaseRequest `gorm:"foreignKey:CollectibleID;constraint:OnDelete:RESTRICT"`
	ProvenanceEntries []ProvenanceEntry `gorm:"foreignKey:CollectibleID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the Collectible model
func (Collectible) TableName() string {
	return "collectibles"
}

// HandlesInFieldOrder returns the four confidential field handles in the
// canonical order price, certificate, serial, origin.
func (c *Collectible) HandlesInFieldOrder() [4]uuid.UUID {
	return [4]uuid.UUID{c.PriceHandle, c.CertHandle, c.SerialHandle, c.OriginHandle}
}
