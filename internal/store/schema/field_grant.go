package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/veilart/market-ledger/internal/domain"
)

// FieldGrant represents the field_grants table - the vault's access-control
// list. A row grants a principal decryption rights on one ciphertext handle.
// Grants are additive only: ownership transfer grants the new owner without
// revoking the previous one, matching the proof system's access model.
type FieldGrant struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Handle references the ciphertext this grant applies to
	Handle uuid.UUID `gorm:"column:handle;not null;type:uuid;uniqueIndex:uq_field_grants_handle_principal,priority:1"`
	// Principal is the address holding decryption rights
	Principal domain.Principal `gorm:"column:principal;not null;type:text;uniqueIndex:uq_field_grants_handle_principal,priority:2"`
	// CreatedAt is the timestamp when the grant was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Ciphertext Ciphertext `gorm:"foreignKey:Handle;references:Handle;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the FieldGrant model
func (FieldGrant) TableName() string {
	return "field_grants"
}
