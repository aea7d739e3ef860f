package store

import (
	"context"
	"time"

	"github.com/veilart/market-ledger/internal/domain"
	"github.com/veilart/market-ledger/internal/store/schema"
	"github.com/veilart/market-ledger/internal/vault"
)

// CreateCollectibleInput carries everything needed to list a collectible.
type CreateCollectibleInput struct {
	Caller      domain.Principal
	Name        string
	ImageURI    string
	Ciphertexts [vault.FieldCount][]byte // price, certificate, serial, origin
	Proof       string
	ListedAt    time.Time
}

// CreatePurchaseRequestInput carries everything needed to open an offer.
type CreatePurchaseRequestInput struct {
	CollectibleID uint64
	Buyer         domain.Principal
	OfferAmount   domain.Amount
	CreatedAt     time.Time
}

// ApprovalResult reports everything an approval changed, for event emission.
type ApprovalResult struct {
	Approved      *schema.PurchaseRequest
	Collectible   *schema.Collectible
	PreviousOwner domain.Principal
	// RejectedSiblings are the competing requests cascade-rejected in the
	// same transaction, in request creation order. Each buyer was refunded.
	RejectedSiblings []schema.PurchaseRequest
}

// Store defines the interface for ledger database operations. Every mutating
// method applies all of its effects in a single transaction: on any error the
// ledger is unchanged.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateCollectible verifies the ciphertext proof, stores the encrypted
	// fields, grants the ledger and the lister decryption rights, and
	// inserts the collectible record.
	CreateCollectible(ctx context.Context, input CreateCollectibleInput) (*schema.Collectible, error)
	// GetCollectible retrieves a collectible by token ID; nil if unknown
	GetCollectible(ctx context.Context, tokenID uint64) (*schema.Collectible, error)
	// GetOwnerCollectibles retrieves the collectibles currently owned by owner
	GetOwnerCollectibles(ctx context.Context, owner domain.Principal) ([]schema.Collectible, error)

	// CreatePurchaseRequest escrows the offer amount from the buyer and
	// inserts a pending request.
	CreatePurchaseRequest(ctx context.Context, input CreatePurchaseRequestInput) (*schema.PurchaseRequest, error)
	// GetPurchaseRequest retrieves a request by ID; nil if unknown
	GetPurchaseRequest(ctx context.Context, requestID uint64) (*schema.PurchaseRequest, error)
	// GetCollectiblePurchaseRequests retrieves all requests ever made against a collectible
	GetCollectiblePurchaseRequests(ctx context.Context, tokenID uint64) ([]schema.PurchaseRequest, error)
	// GetOwnerPendingRequests retrieves the pending requests awaiting a decision
	// by the current owner of each target collectible
	GetOwnerPendingRequests(ctx context.Context, owner domain.Principal) ([]schema.PurchaseRequest, error)
	// GetBuyerRequests retrieves every request a buyer ever created (historical, never pruned)
	GetBuyerRequests(ctx context.Context, buyer domain.Principal) ([]schema.PurchaseRequest, error)

	// ApprovePurchase atomically settles the approved request's escrow to the
	// previous owner, transfers ownership, grants the buyer decryption rights,
	// cascade-rejects and refunds every competing pending request, and appends
	// a provenance entry.
	ApprovePurchase(ctx context.Context, requestID uint64, caller domain.Principal, now time.Time) (*ApprovalResult, error)
	// RejectPurchase atomically marks a pending request rejected and refunds
	// its buyer.
	RejectPurchase(ctx context.Context, requestID uint64, caller domain.Principal, now time.Time) (*schema.PurchaseRequest, error)

	// GetProvenance retrieves the full transfer history of a collectible in
	// append order.
	GetProvenance(ctx context.Context, tokenID uint64) ([]schema.ProvenanceEntry, error)
}
