package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veilart/market-ledger/internal/domain"
	"github.com/veilart/market-ledger/internal/payments"
	"github.com/veilart/market-ledger/internal/store/schema"
	"github.com/veilart/market-ledger/internal/vault"
)

type pgStore struct {
	db       *gorm.DB
	vault    vault.Vault
	treasury payments.Treasury
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, v vault.Vault, t payments.Treasury) Store {
	return &pgStore{db: db, vault: v, treasury: t}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateCollectible verifies and stores the confidential fields, grants the
// ledger and the lister decryption rights, and inserts the collectible record
// in a single transaction.
func (s *pgStore) CreateCollectible(ctx context.Context, input CreateCollectibleInput) (*schema.Collectible, error) {
	var collectible *schema.Collectible

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Convert the external ciphertexts into vault handles; this is
		// where proof verification happens
		handles, err := s.vault.FromExternalCiphertexts(tx, input.Ciphertexts, input.Proof)
		if err != nil {
			return err
		}

		// 2. Grant decryption rights to the ledger itself and to the lister
		for _, handle := range handles {
			if err := s.vault.Grant(tx, handle, domain.LedgerPrincipal); err != nil {
				return err
			}
			if err := s.vault.Grant(tx, handle, input.Caller); err != nil {
				return err
			}
		}

		// 3. Insert the collectible; the sequence assigns the token ID
		record := schema.Collectible{
			Owner:        input.Caller,
			Name:         input.Name,
			ImageURI:     input.ImageURI,
			PriceHandle:  handles[0],
			CertHandle:   handles[1],
			SerialHandle: handles[2],
			OriginHandle: handles[3],
			ListedAt:     input.ListedAt,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create collectible: %w", err)
		}

		collectible = &record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return collectible, nil
}

// GetCollectible retrieves a collectible by token ID
func (s *pgStore) GetCollectible(ctx context.Context, tokenID uint64) (*schema.Collectible, error) {
	var collectible schema.Collectible
	err := s.db.WithContext(ctx).Where("id = ?", tokenID).First(&collectible).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collectible: %w", err)
	}
	return &collectible, nil
}

// GetOwnerCollectibles retrieves the collectibles currently owned by owner
func (s *pgStore) GetOwnerCollectibles(ctx context.Context, owner domain.Principal) ([]schema.Collectible, error) {
	var collectibles []schema.Collectible
	err := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("id ASC").
		Find(&collectibles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get owner collectibles: %w", err)
	}
	return collectibles, nil
}

// CreatePurchaseRequest escrows the offer amount from the buyer and inserts a
// pending request in a single transaction.
func (s *pgStore) CreatePurchaseRequest(ctx context.Context, input CreatePurchaseRequestInput) (*schema.PurchaseRequest, error) {
	var request *schema.PurchaseRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the collectible so the owner read stays consistent with
		// any concurrent approval
		var collectible schema.Collectible
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.CollectibleID).
			First(&collectible).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock collectible: %w", err)
		}

		if collectible.Owner == input.Buyer {
			return domain.ErrSelfPurchase
		}

		// 2. Escrow the offer: buyer -> ledger custody. Insufficient funds
		// aborts the whole operation.
		if err := s.treasury.Transfer(tx, input.Buyer, domain.EscrowPrincipal, input.OfferAmount); err != nil {
			if errors.Is(err, domain.ErrPaymentFailed) {
				return err
			}
			return fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
		}

		// 3. Insert the pending request; the sequence assigns the request ID
		record := schema.PurchaseRequest{
			CollectibleID: input.CollectibleID,
			Buyer:         input.Buyer,
			OfferAmount:   input.OfferAmount,
			State:         domain.RequestStatePending,
			CreatedAt:     input.CreatedAt,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create purchase request: %w", err)
		}

		request = &record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}

// GetPurchaseRequest retrieves a request by ID
func (s *pgStore) GetPurchaseRequest(ctx context.Context, requestID uint64) (*schema.PurchaseRequest, error) {
	var request schema.PurchaseRequest
	err := s.db.WithContext(ctx).Where("id = ?", requestID).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase request: %w", err)
	}
	return &request, nil
}

// GetCollectiblePurchaseRequests retrieves all requests ever made against a collectible
func (s *pgStore) GetCollectiblePurchaseRequests(ctx context.Context, tokenID uint64) ([]schema.PurchaseRequest, error) {
	var requests []schema.PurchaseRequest
	err := s.db.WithContext(ctx).
		Where("collectible_id = ?", tokenID).
		Order("id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get collectible purchase requests: %w", err)
	}
	return requests, nil
}

// GetOwnerPendingRequests retrieves the pending requests whose target
// collectible is currently owned by owner. Derived from the primary tables,
// so it can never drift from them.
func (s *pgStore) GetOwnerPendingRequests(ctx context.Context, owner domain.Principal) ([]schema.PurchaseRequest, error) {
	var requests []schema.PurchaseRequest
	err := s.db.WithContext(ctx).
		Joins("JOIN collectibles ON collectibles.id = purchase_requests.collectible_id").
		Where("collectibles.owner = ? AND purchase_requests.state = ?", owner, domain.RequestStatePending).
		Order("purchase_requests.id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get owner pending requests: %w", err)
	}
	return requests, nil
}

// GetBuyerRequests retrieves every request a buyer ever created
func (s *pgStore) GetBuyerRequests(ctx context.Context, buyer domain.Principal) ([]schema.PurchaseRequest, error) {
	var requests []schema.PurchaseRequest
	err := s.db.WithContext(ctx).
		Where("buyer = ?", buyer).
		Order("id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get buyer requests: %w", err)
	}
	return requests, nil
}

// ApprovePurchase is the central ledger transition. All steps commit together
// or none do:
//  1. mark the request approved and pay its escrow to the previous owner
//  2. transfer ownership to the buyer
//  3. grant the buyer decryption rights on all four confidential fields
//  4. cascade-reject and refund every competing pending request
//  5. append the provenance entry
func (s *pgStore) ApprovePurchase(ctx context.Context, requestID uint64, caller domain.Principal, now time.Time) (*ApprovalResult, error) {
	var result *ApprovalResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the request row
		var request schema.PurchaseRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", requestID).
			First(&request).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock purchase request: %w", err)
		}
		if request.State != domain.RequestStatePending {
			return domain.ErrNotPending
		}

		// 2. Lock the collectible and check the caller is its current owner
		var collectible schema.Collectible
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", request.CollectibleID).
			First(&collectible).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock collectible: %w", err)
		}
		if collectible.Owner != caller {
			return domain.ErrUnauthorized
		}

		previousOwner := collectible.Owner

		// 3. Mark the request approved with its settlement record
		payout := domain.SettlementPayout
		request.State = domain.RequestStateApproved
		request.Settlement = &payout
		request.SettledAt = &now
		if err := tx.Save(&request).Error; err != nil {
			return fmt.Errorf("failed to update approved request: %w", err)
		}

		// 4. Pay the escrowed offer to the previous owner. A failed payout
		// is fatal to the whole operation.
		if err := s.treasury.Transfer(tx, domain.EscrowPrincipal, previousOwner, request.OfferAmount); err != nil {
			return fmt.Errorf("%w: payout for request %d: %w", domain.ErrPaymentFailed, request.ID, err)
		}

		// 5. Transfer ownership
		collectible.Owner = request.Buyer
		if err := tx.Save(&collectible).Error; err != nil {
			return fmt.Errorf("failed to transfer ownership: %w", err)
		}

		// 6. Grant the buyer decryption rights. Prior owners keep theirs;
		// grants are additive only.
		for _, handle := range collectible.HandlesInFieldOrder() {
			if err := s.vault.Grant(tx, handle, request.Buyer); err != nil {
				return err
			}
		}

		// 7. Cascade: reject and refund every other pending request against
		// this collectible, in request creation order
		var siblings []schema.PurchaseRequest
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("collectible_id = ? AND state = ? AND id <> ?",
				collectible.ID, domain.RequestStatePending, request.ID).
			Order("id ASC").
			Find(&siblings).Error
		if err != nil {
			return fmt.Errorf("failed to lock sibling requests: %w", err)
		}

		refund := domain.SettlementRefund
		for i := range siblings {
			sibling := &siblings[i]
			sibling.State = domain.RequestStateRejected
			sibling.Settlement = &refund
			sibling.SettledAt = &now
			if err := tx.Save(sibling).Error; err != nil {
				return fmt.Errorf("failed to update cascaded request %d: %w", sibling.ID, err)
			}

			// A failed refund for any sibling is fatal to the whole operation
			if err := s.treasury.Transfer(tx, domain.EscrowPrincipal, sibling.Buyer, sibling.OfferAmount); err != nil {
				return fmt.Errorf("%w: refund for request %d: %w", domain.ErrRefundFailed, sibling.ID, err)
			}
		}

		// 8. Append the provenance entry
		raw, err := json.Marshal(map[string]interface{}{
			"request_id": request.ID,
			"buyer":      request.Buyer,
			"seller":     previousOwner,
			"price":      request.OfferAmount,
			"cascaded":   len(siblings),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal provenance payload: %w", err)
		}

		entry := schema.ProvenanceEntry{
			CollectibleID: collectible.ID,
			FromOwner:     previousOwner,
			ToOwner:       request.Buyer,
			RequestID:     request.ID,
			Price:         request.OfferAmount,
			Timestamp:     now,
			Raw:           raw,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append provenance entry: %w", err)
		}

		result = &ApprovalResult{
			Approved:         &request,
			Collectible:      &collectible,
			PreviousOwner:    previousOwner,
			RejectedSiblings: siblings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RejectPurchase marks a pending request rejected and refunds its buyer in a
// single transaction.
func (s *pgStore) RejectPurchase(ctx context.Context, requestID uint64, caller domain.Principal, now time.Time) (*schema.PurchaseRequest, error) {
	var rejected *schema.PurchaseRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request schema.PurchaseRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", requestID).
			First(&request).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock purchase request: %w", err)
		}
		if request.State != domain.RequestStatePending {
			return domain.ErrNotPending
		}

		var collectible schema.Collectible
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", request.CollectibleID).
			First(&collectible).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock collectible: %w", err)
		}
		if collectible.Owner != caller {
			return domain.ErrUnauthorized
		}

		refund := domain.SettlementRefund
		request.State = domain.RequestStateRejected
		request.Settlement = &refund
		request.SettledAt = &now
		if err := tx.Save(&request).Error; err != nil {
			return fmt.Errorf("failed to update rejected request: %w", err)
		}

		if err := s.treasury.Transfer(tx, domain.EscrowPrincipal, request.Buyer, request.OfferAmount); err != nil {
			return fmt.Errorf("%w: refund for request %d: %w", domain.ErrRefundFailed, request.ID, err)
		}

		rejected = &request
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rejected, nil
}

// GetProvenance retrieves the full transfer history of a collectible in
// append order
func (s *pgStore) GetProvenance(ctx context.Context, tokenID uint64) ([]schema.ProvenanceEntry, error) {
	var entries []schema.ProvenanceEntry
	err := s.db.WithContext(ctx).
		Where("collectible_id = ?", tokenID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get provenance entries: %w", err)
	}
	return entries, nil
}
