package vault

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veilart/market-ledger/internal/domain"
	"github.com/veilart/market-ledger/internal/store/schema"
)

// FieldCount is the number of confidential attributes per collectible:
// price, certificate, serial, origin, in that order.
const FieldCount = 4

// Vault is the confidential-field collaborator. It holds opaque ciphertexts
// behind UUID handles and enforces decryption rights through an ACL. The
// ledger only orchestrates calls; it never inspects ciphertext contents.
//
// Grants are additive: transferring a collectible grants the new owner
// without revoking the previous one. The owner check at the ledger layer is
// what gates stale access.
//
//go:generate mockgen -source=vault.go -destination=../mocks/vault.go -package=mocks -mock_names=Vault=MockVault
type Vault interface {
	// FromExternalCiphertexts verifies the binding proof over the raw
	// ciphertexts and stores them inside tx, returning fresh handles in
	// field order. Returns domain.ErrInvalidProof when verification fails.
	FromExternalCiphertexts(tx *gorm.DB, inputs [FieldCount][]byte, proof string) ([FieldCount]uuid.UUID, error)
	// Grant gives principal decryption rights on handle inside tx. Idempotent.
	Grant(tx *gorm.DB, handle uuid.UUID, principal domain.Principal) error
	// Read returns the ciphertext for grant holders; domain.ErrUnauthorized
	// otherwise, domain.ErrNotFound for unknown handles.
	Read(ctx context.Context, handle uuid.UUID, principal domain.Principal) ([]byte, error)
	// Holders lists the principals granted on a handle.
	Holders(ctx context.Context, handle uuid.UUID) ([]domain.Principal, error)
}

type pgVault struct {
	db *gorm.DB
}

// NewVault creates a vault over the shared database
func NewVault(db *gorm.DB) Vault {
	return &pgVault{db: db}
}

// VerifyProof checks the binding proof for a set of external ciphertexts:
// the hex SHA-256 digest over the ciphertexts concatenated in field order.
// The proof binds the four values together so a caller cannot mix fields
// from different attestations.
func VerifyProof(inputs [FieldCount][]byte, proof string) bool {
	h := sha256.New()
	for _, in := range inputs {
		h.Write(in)
	}
	want := hex.EncodeToString(h.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(want), []byte(proof)) == 1
}

func (v *pgVault) FromExternalCiphertexts(tx *gorm.DB, inputs [FieldCount][]byte, proof string) ([FieldCount]uuid.UUID, error) {
	var handles [FieldCount]uuid.UUID

	for _, in := range inputs {
		if len(in) == 0 {
			return handles, domain.ErrInvalidProof
		}
	}
	if !VerifyProof(inputs, proof) {
		return handles, domain.ErrInvalidProof
	}

	for i, in := range inputs {
		handles[i] = uuid.New()
		ct := schema.Ciphertext{
			Handle: handles[i],
			Data:   in,
		}
		if err := tx.Create(&ct).Error; err != nil {
			return handles, fmt.Errorf("failed to store ciphertext: %w", err)
		}
	}

	return handles, nil
}

func (v *pgVault) Grant(tx *gorm.DB, handle uuid.UUID, principal domain.Principal) error {
	grant := schema.FieldGrant{
		Handle:    handle,
		Principal: principal,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "handle"}, {Name: "principal"}},
		DoNothing: true,
	}).Create(&grant).Error
	if err != nil {
		return fmt.Errorf("failed to grant on handle %s: %w", handle, err)
	}
	return nil
}

func (v *pgVault) Read(ctx context.Context, handle uuid.UUID, principal domain.Principal) ([]byte, error) {
	var ct schema.Ciphertext
	err := v.db.WithContext(ctx).Where("handle = ?", handle).First(&ct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ciphertext: %w", err)
	}

	var count int64
	err = v.db.WithContext(ctx).
		Model(&schema.FieldGrant{}).
		Where("handle = ? AND principal = ?", handle, principal).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check grant: %w", err)
	}
	if count == 0 {
		return nil, domain.ErrUnauthorized
	}

	return ct.Data, nil
}

func (v *pgVault) Holders(ctx context.Context, handle uuid.UUID) ([]domain.Principal, error) {
	var grants []schema.FieldGrant
	err := v.db.WithContext(ctx).
		Where("handle = ?", handle).
		Order("id ASC").
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}

	holders := make([]domain.Principal, len(grants))
	for i, g := range grants {
		holders[i] = g.Principal
	}
	return holders, nil
}
