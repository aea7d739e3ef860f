package schema

import (
	"time"

	"github.com/google/uuid"
)

// Ciphertext represents the ciphertexts table - the vault's opaque encrypted
// values. The ciphertext bytes are immutable once stored; only the grants on
// the handle change over time.
type Ciphertext struct {
	// Handle is the opaque reference given out to the ledger
	Handle uuid.UUID `gorm:"column:handle;primaryKey;type:uuid"`
	// Data is the encrypted value as delivered by the external proof system
	Data []byte `gorm:"column:data;not null;type:bytea"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Ciphertext model
func (Ciphertext) TableName() string {
	return "ciphertexts"
}
