package ledger

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/veilart/market-ledger/internal/adapter"
	"github.com/veilart/market-ledger/internal/domain"
	"github.com/veilart/market-ledger/internal/logger"
	"github.com/veilart/market-ledger/internal/messaging"
	"github.com/veilart/market-ledger/internal/payments"
	"github.com/veilart/market-ledger/internal/store"
	"github.com/veilart/market-ledger/internal/store/schema"
	"github.com/veilart/market-ledger/internal/vault"
)

// Config holds the configuration for the ledger service
type Config struct {
	EventWorkers   int
	EventQueueSize int
	PublishTimeout time.Duration
}

// FieldNames are the confidential attributes of a collectible, in the
// canonical order the binding proof covers.
var FieldNames = [vault.FieldCount]string{"price", "certificate", "serial", "origin"}

// ListCollectibleInput carries a listing submission. Addresses arrive raw
// from the API layer and are normalized here.
type ListCollectibleInput struct {
	Caller      string
	Name        string
	ImageURI    string
	Ciphertexts [vault.FieldCount][]byte
	Proof       string
}

// RequestPurchaseInput carries an offer submission.
type RequestPurchaseInput struct {
	Buyer       string
	TokenID     uint64
	OfferAmount string
}

// EncryptedField pairs a confidential attribute with its vault handle and
// ciphertext, readable only by grant holders.
type EncryptedField struct {
	Name       string    `json:"name"`
	Handle     uuid.UUID `json:"handle"`
	Ciphertext []byte    `json:"ciphertext"`
}

// Service is the marketplace ledger: listings, offer negotiation with
// escrow, provenance, and account funding. Mutations are transactional in
// the store; events are emitted post-commit, best-effort.
//
//go:generate mockgen -source=service.go -destination=../mocks/ledger_service.go -package=mocks -mock_names=Service=MockService
type Service interface {
	// ListCollectible registers a new collectible with encrypted attributes
	ListCollectible(ctx context.Context, input ListCollectibleInput) (*schema.Collectible, error)
	// GetCollectible returns the public view; unknown IDs yield Exists=false
	GetCollectible(ctx context.Context, tokenID uint64) (*domain.CollectibleInfo, error)
	// GetOwnerCollectibles lists the collectibles currently owned by owner
	GetOwnerCollectibles(ctx context.Context, owner string) ([]schema.Collectible, error)
	// GetEncryptedMetadata returns the confidential fields readable by caller
	GetEncryptedMetadata(ctx context.Context, caller string, tokenID uint64) ([]EncryptedField, error)

	// RequestPurchase escrows the offer and opens a pending request
	RequestPurchase(ctx context.Context, input RequestPurchaseInput) (*schema.PurchaseRequest, error)
	// ApprovePurchase settles an offer: payment, ownership, grants, cascade
	ApprovePurchase(ctx context.Context, requestID uint64, caller string) (*store.ApprovalResult, error)
	// RejectPurchase declines an offer and refunds its buyer
	RejectPurchase(ctx context.Context, requestID uint64, caller string) (*schema.PurchaseRequest, error)

	// GetPurchaseRequest returns a request by ID; nil if unknown
	GetPurchaseRequest(ctx context.Context, requestID uint64) (*schema.PurchaseRequest, error)
	// GetTokenPurchaseRequests returns every request made against a collectible
	GetTokenPurchaseRequests(ctx context.Context, tokenID uint64) ([]schema.PurchaseRequest, error)
	// GetOwnerPendingRequests returns the offers awaiting a decision by owner
	GetOwnerPendingRequests(ctx context.Context, owner string) ([]schema.PurchaseRequest, error)
	// GetBuyerRequests returns every request a buyer ever created
	GetBuyerRequests(ctx context.Context, buyer string) ([]schema.PurchaseRequest, error)

	// GetProvenance returns the full transfer history of a collectible
	GetProvenance(ctx context.Context, tokenID uint64) ([]domain.ProvenanceEntry, error)

	// Deposit credits spendable value to an account
	Deposit(ctx context.Context, principal string, amount string) error
	// GetBalance reads an account balance; unknown accounts hold zero
	GetBalance(ctx context.Context, principal string) (domain.Amount, error)

	// Close drains the event pool
	Close()
}

type service struct {
	store          store.Store
	vault          vault.Vault
	treasury       payments.Treasury
	publisher      messaging.Publisher
	clock          adapter.Clock
	pool           pond.Pool
	publishTimeout time.Duration
}

// NewService creates the ledger service with its async event pool
func NewService(
	st store.Store,
	v vault.Vault,
	t payments.Treasury,
	pub messaging.Publisher,
	clock adapter.Clock,
	cfg Config,
) Service {
	workers := cfg.EventWorkers
	if workers == 0 {
		workers = 4
	}
	queueSize := cfg.EventQueueSize
	if queueSize == 0 {
		queueSize = 256
	}
	publishTimeout := cfg.PublishTimeout
	if publishTimeout == 0 {
		publishTimeout = 10 * time.Second
	}

	return &service{
		store:          st,
		vault:          v,
		treasury:       t,
		publisher:      pub,
		clock:          clock,
		pool:           pond.NewPool(workers, pond.WithQueueSize(queueSize)),
		publishTimeout: publishTimeout,
	}
}

func (s *service) ListCollectible(ctx context.Context, input ListCollectibleInput) (*schema.Collectible, error) {
	caller, err := domain.NewPrincipal(input.Caller)
	if err != nil {
		return nil, err
	}
	if input.Name == "" || input.ImageURI == "" {
		return nil, domain.ErrEmptyField
	}

	now := s.clock.Now().UTC()
	collectible, err := s.store.CreateCollectible(ctx, store.CreateCollectibleInput{
		Caller:      caller,
		Name:        input.Name,
		ImageURI:    input.ImageURI,
		Ciphertexts: input.Ciphertexts,
		Proof:       input.Proof,
		ListedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.emit(&domain.MarketEvent{
		Type:      domain.EventTypeCollectibleListed,
		TokenID:   collectible.ID,
		Owner:     collectible.Owner,
		Name:      collectible.Name,
		Timestamp: now,
	})

	return collectible, nil
}

func (s *service) GetCollectible(ctx context.Context, tokenID uint64) (*domain.CollectibleInfo, error) {
	collectible, err := s.store.GetCollectible(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if collectible == nil {
		// unknown IDs are not an error, the zero view says so
		return &domain.CollectibleInfo{TokenID: tokenID}, nil
	}

	return &domain.CollectibleInfo{
		TokenID:  collectible.ID,
		Name:     collectible.Name,
		ImageURI: collectible.ImageURI,
		Owner:    collectible.Owner,
		ListedAt: collectible.ListedAt,
		Exists:   true,
	}, nil
}

func (s *service) GetOwnerCollectibles(ctx context.Context, owner string) ([]schema.Collectible, error) {
	principal, err := domain.NewPrincipal(owner)
	if err != nil {
		return nil, err
	}
	return s.store.GetOwnerCollectibles(ctx, principal)
}

func (s *service) GetEncryptedMetadata(ctx context.Context, caller string, tokenID uint64) ([]EncryptedField, error) {
	principal, err := domain.NewPrincipal(caller)
	if err != nil {
		return nil, err
	}

	collectible, err := s.store.GetCollectible(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if collectible == nil {
		return nil, domain.ErrNotFound
	}

	handles := collectible.HandlesInFieldOrder()
	fields := make([]EncryptedField, 0, len(handles))
	for i, handle := range handles {
		data, err := s.vault.Read(ctx, handle, principal)
		if err != nil {
			return nil, err
		}
		fields = append(fields, EncryptedField{
			Name:       FieldNames[i],
			Handle:     handle,
			Ciphertext: data,
		})
	}

	return fields, nil
}

func (s *service) RequestPurchase(ctx context.Context, input RequestPurchaseInput) (*schema.PurchaseRequest, error) {
	buyer, err := domain.NewPrincipal(input.Buyer)
	if err != nil {
		return nil, err
	}

	offer := domain.Amount(input.OfferAmount)
	if !offer.Valid() {
		return nil, domain.ErrInvalidAmount
	}
	if !offer.Positive() {
		return nil, domain.ErrZeroOffer
	}

	now := s.clock.Now().UTC()
	request, err := s.store.CreatePurchaseRequest(ctx, store.CreatePurchaseRequestInput{
		CollectibleID: input.TokenID,
		Buyer:         buyer,
		OfferAmount:   offer,
		CreatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	s.emit(&domain.MarketEvent{
		Type:      domain.EventTypePurchaseRequested,
		TokenID:   request.CollectibleID,
		RequestID: &request.ID,
		Buyer:     request.Buyer,
		Amount:    request.OfferAmount,
		Timestamp: now,
	})

	return request, nil
}

func (s *service) ApprovePurchase(ctx context.Context, requestID uint64, caller string) (*store.ApprovalResult, error) {
	principal, err := domain.NewPrincipal(caller)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	result, err := s.store.ApprovePurchase(ctx, requestID, principal, now)
	if err != nil {
		return nil, err
	}

	s.emit(&domain.MarketEvent{
		Type:      domain.EventTypePurchaseApproved,
		TokenID:   result.Collectible.ID,
		RequestID: &result.Approved.ID,
		Owner:     result.PreviousOwner,
		Buyer:     result.Approved.Buyer,
		Amount:    result.Approved.OfferAmount,
		Timestamp: now,
	})
	for i := range result.RejectedSiblings {
		sibling := result.RejectedSiblings[i]
		s.emit(&domain.MarketEvent{
			Type:      domain.EventTypePurchaseRejected,
			TokenID:   result.Collectible.ID,
			RequestID: &sibling.ID,
			Buyer:     sibling.Buyer,
			Amount:    sibling.OfferAmount,
			Timestamp: now,
		})
	}
	s.emit(&domain.MarketEvent{
		Type:      domain.EventTypeCollectiblePurchased,
		TokenID:   result.Collectible.ID,
		RequestID: &result.Approved.ID,
		Owner:     result.Collectible.Owner,
		Buyer:     result.Approved.Buyer,
		Amount:    result.Approved.OfferAmount,
		Name:      result.Collectible.Name,
		Timestamp: now,
	})

	return result, nil
}

func (s *service) RejectPurchase(ctx context.Context, requestID uint64, caller string) (*schema.PurchaseRequest, error) {
	principal, err := domain.NewPrincipal(caller)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	request, err := s.store.RejectPurchase(ctx, requestID, principal, now)
	if err != nil {
		return nil, err
	}

	s.emit(&domain.MarketEvent{
		Type:      domain.EventTypePurchaseRejected,
		TokenID:   request.CollectibleID,
		RequestID: &request.ID,
		Buyer:     request.Buyer,
		Amount:    request.OfferAmount,
		Timestamp: now,
	})

	return request, nil
}

func (s *service) GetPurchaseRequest(ctx context.Context, requestID uint64) (*schema.PurchaseRequest, error) {
	return s.store.GetPurchaseRequest(ctx, requestID)
}

func (s *service) GetTokenPurchaseRequests(ctx context.Context, tokenID uint64) ([]schema.PurchaseRequest, error) {
	return s.store.GetCollectiblePurchaseRequests(ctx, tokenID)
}

func (s *service) GetOwnerPendingRequests(ctx context.Context, owner string) ([]schema.PurchaseRequest, error) {
	principal, err := domain.NewPrincipal(owner)
	if err != nil {
		return nil, err
	}
	return s.store.GetOwnerPendingRequests(ctx, principal)
}

func (s *service) GetBuyerRequests(ctx context.Context, buyer string) ([]schema.PurchaseRequest, error) {
	principal, err := domain.NewPrincipal(buyer)
	if err != nil {
		return nil, err
	}
	return s.store.GetBuyerRequests(ctx, principal)
}

func (s *service) GetProvenance(ctx context.Context, tokenID uint64) ([]domain.ProvenanceEntry, error) {
	entries, err := s.store.GetProvenance(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	history := make([]domain.ProvenanceEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, domain.ProvenanceEntry{
			From:      entry.FromOwner,
			To:        entry.ToOwner,
			RequestID: entry.RequestID,
			Price:     entry.Price,
			Timestamp: entry.Timestamp,
		})
	}
	return history, nil
}

func (s *service) Deposit(ctx context.Context, principal string, amount string) error {
	p, err := domain.NewPrincipal(principal)
	if err != nil {
		return err
	}
	a := domain.Amount(amount)
	if !a.Positive() {
		return domain.ErrInvalidAmount
	}
	return s.treasury.Deposit(ctx, p, a)
}

func (s *service) GetBalance(ctx context.Context, principal string) (domain.Amount, error) {
	p, err := domain.NewPrincipal(principal)
	if err != nil {
		return "", err
	}
	return s.treasury.Balance(ctx, p)
}

// Close drains the event pool. Queued events are still published.
func (s *service) Close() {
	s.pool.StopAndWait()
}

// emit queues a post-commit event for async publication. The ledger state
// is already committed, so failures are logged and dropped.
func (s *service) emit(event *domain.MarketEvent) {
	event.EventID = ulid.MustNewDefault(s.clock.Now()).String()

	s.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.publishTimeout)
		defer cancel()

		if err := s.publisher.PublishEvent(ctx, event); err != nil {
			logger.Error(err,
				zap.String("message", "failed to publish market event"),
				zap.String("event_id", event.EventID),
				zap.String("type", string(event.Type)))
		}
	})
}
