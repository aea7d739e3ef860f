package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilart/market-ledger/internal/domain"
	"github.com/veilart/market-ledger/internal/payments"
	"github.com/veilart/market-ledger/internal/vault"
)

// suiteVault and suiteTreasury are rebuilt by InitDB over the same
// transaction as the store under test, so assertions can inspect vault
// grants and account balances directly.
var (
	suiteVault    vault.Vault
	suiteTreasury payments.Treasury
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// =============================================================================
// Test Data Builders
// =============================================================================

var principalSeq uint64

// newTestPrincipal returns a fresh hex-address principal. Subtests share the
// suite transaction, so reusing an address would leak balances and ownership
// between them.
func newTestPrincipal() domain.Principal {
	n := atomic.AddUint64(&principalSeq, 1)
	return domain.Principal(fmt.Sprintf("0x%040x", n))
}

// bindTestProof computes the binding proof over ciphertexts in field order
func bindTestProof(inputs [vault.FieldCount][]byte) string {
	h := sha256.New()
	for _, in := range inputs {
		h.Write(in)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// buildTestCollectible creates a collectible input with a valid binding proof
func buildTestCollectible(owner domain.Principal, name string) CreateCollectibleInput {
	ciphertexts := [vault.FieldCount][]byte{
		[]byte("enc:price:" + name),
		[]byte("enc:cert:" + name),
		[]byte("enc:serial:" + name),
		[]byte("enc:origin:" + name),
	}
	return CreateCollectibleInput{
		Caller:      owner,
		Name:        name,
		ImageURI:    fmt.Sprintf("https://img.example/%s.png", name),
		Ciphertexts: ciphertexts,
		Proof:       bindTestProof(ciphertexts),
		ListedAt:    time.Now().UTC(),
	}
}

// seedCollectible lists a collectible and returns its token ID
func seedCollectible(t *testing.T, store Store, owner domain.Principal, name string) uint64 {
	t.Helper()
	collectible, err := store.CreateCollectible(context.Background(), buildTestCollectible(owner, name))
	require.NoError(t, err)
	require.NotNil(t, collectible)
	return collectible.ID
}

// seedFunds deposits spendable value into a principal's account
func seedFunds(t *testing.T, principal domain.Principal, amount domain.Amount) {
	t.Helper()
	require.NoError(t, suiteTreasury.Deposit(context.Background(), principal, amount))
}

// seedRequest escrows an offer and returns the pending request ID
func seedRequest(t *testing.T, store Store, tokenID uint64, buyer domain.Principal, offer domain.Amount) uint64 {
	t.Helper()
	request, err := store.CreatePurchaseRequest(context.Background(), CreatePurchaseRequestInput{
		CollectibleID: tokenID,
		Buyer:         buyer,
		OfferAmount:   offer,
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotNil(t, request)
	return request.ID
}

func requireBalance(t *testing.T, principal domain.Principal, want domain.Amount) {
	t.Helper()
	got, err := suiteTreasury.Balance(context.Background(), principal)
	require.NoError(t, err)
	assert.Equal(t, want, got, "balance of %s", principal)
}

// =============================================================================
// Test: CreateCollectible
// =============================================================================

func testCreateCollectible(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("successful listing stores fields and grants lister and ledger", func(t *testing.T) {
		lister := newTestPrincipal()
		stranger := newTestPrincipal()
		input := buildTestCollectible(lister, "sunset-study")

		collectible, err := store.CreateCollectible(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, collectible)

		assert.NotZero(t, collectible.ID)
		assert.Equal(t, lister, collectible.Owner)
		assert.Equal(t, "sunset-study", collectible.Name)
		assert.Equal(t, input.ImageURI, collectible.ImageURI)

		// the lister and the ledger can read every field, a stranger none
		for i, handle := range collectible.HandlesInFieldOrder() {
			data, err := suiteVault.Read(ctx, handle, lister)
			require.NoError(t, err)
			assert.Equal(t, input.Ciphertexts[i], data)

			_, err = suiteVault.Read(ctx, handle, domain.LedgerPrincipal)
			require.NoError(t, err)

			_, err = suiteVault.Read(ctx, handle, stranger)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		}
	})

	t.Run("token IDs are assigned in listing order", func(t *testing.T) {
		lister := newTestPrincipal()
		first := seedCollectible(t, store, lister, "first")
		second := seedCollectible(t, store, lister, "second")
		assert.Greater(t, second, first)
	})

	t.Run("tampered proof is rejected and nothing is stored", func(t *testing.T) {
		input := buildTestCollectible(newTestPrincipal(), "forged")
		input.Proof = bindTestProof([vault.FieldCount][]byte{
			[]byte("x"), []byte("x"), []byte("x"), []byte("x"),
		})

		collectible, err := store.CreateCollectible(ctx, input)
		assert.ErrorIs(t, err, domain.ErrInvalidProof)
		assert.Nil(t, collectible)
	})

	t.Run("reordered ciphertexts break the binding proof", func(t *testing.T) {
		input := buildTestCollectible(newTestPrincipal(), "swapped")
		input.Ciphertexts[0], input.Ciphertexts[1] = input.Ciphertexts[1], input.Ciphertexts[0]

		_, err := store.CreateCollectible(ctx, input)
		assert.ErrorIs(t, err, domain.ErrInvalidProof)
	})
}

// =============================================================================
// Test: Get collectibles
// =============================================================================

func testGetCollectibles(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get by token ID", func(t *testing.T) {
		tokenID := seedCollectible(t, store, newTestPrincipal(), "lookup")

		collectible, err := store.GetCollectible(ctx, tokenID)
		require.NoError(t, err)
		require.NotNil(t, collectible)
		assert.Equal(t, "lookup", collectible.Name)
	})

	t.Run("unknown token ID returns nil without error", func(t *testing.T) {
		collectible, err := store.GetCollectible(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, collectible)
	})

	t.Run("owner listing reflects current ownership only", func(t *testing.T) {
		alice := newTestPrincipal()
		bob := newTestPrincipal()
		aliceToken := seedCollectible(t, store, alice, "alice-piece")
		seedCollectible(t, store, bob, "bob-piece")

		owned, err := store.GetOwnerCollectibles(ctx, alice)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, aliceToken, owned[0].ID)
	})
}

// =============================================================================
// Test: CreatePurchaseRequest
// =============================================================================

func testCreatePurchaseRequest(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("offer is escrowed and request is pending", func(t *testing.T) {
		seller := newTestPrincipal()
		buyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "escrowed")
		seedFunds(t, buyer, "100000")

		request, err := store.CreatePurchaseRequest(ctx, CreatePurchaseRequestInput{
			CollectibleID: tokenID,
			Buyer:         buyer,
			OfferAmount:   "92000",
			CreatedAt:     time.Now().UTC(),
		})
		require.NoError(t, err)
		require.NotNil(t, request)

		assert.Equal(t, domain.RequestStatePending, request.State)
		assert.Nil(t, request.Settlement)
		assert.Nil(t, request.SettledAt)

		requireBalance(t, buyer, "8000")
		requireBalance(t, domain.EscrowPrincipal, "92000")
	})

	t.Run("unknown collectible", func(t *testing.T) {
		buyer := newTestPrincipal()
		seedFunds(t, buyer, "10")

		_, err := store.CreatePurchaseRequest(ctx, CreatePurchaseRequestInput{
			CollectibleID: 999999,
			Buyer:         buyer,
			OfferAmount:   "10",
			CreatedAt:     time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner cannot bid on their own collectible", func(t *testing.T) {
		owner := newTestPrincipal()
		tokenID := seedCollectible(t, store, owner, "own-bid")
		seedFunds(t, owner, "10")

		_, err := store.CreatePurchaseRequest(ctx, CreatePurchaseRequestInput{
			CollectibleID: tokenID,
			Buyer:         owner,
			OfferAmount:   "10",
			CreatedAt:     time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrSelfPurchase)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("insufficient funds abort the request and move nothing", func(t *testing.T) {
		seller := newTestPrincipal()
		buyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "too-rich")
		seedFunds(t, buyer, "50")

		_, err := store.CreatePurchaseRequest(ctx, CreatePurchaseRequestInput{
			CollectibleID: tokenID,
			Buyer:         buyer,
			OfferAmount:   "51",
			CreatedAt:     time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrPaymentFailed)

		requireBalance(t, buyer, "50")

		requests, err := store.GetBuyerRequests(ctx, buyer)
		require.NoError(t, err)
		assert.Empty(t, requests)
	})

	t.Run("multiple buyers can hold concurrent pending offers", func(t *testing.T) {
		seller := newTestPrincipal()
		bidderA := newTestPrincipal()
		bidderB := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "contested")
		seedFunds(t, bidderA, "100")
		seedFunds(t, bidderB, "200")

		seedRequest(t, store, tokenID, bidderA, "100")
		seedRequest(t, store, tokenID, bidderB, "200")

		requests, err := store.GetCollectiblePurchaseRequests(ctx, tokenID)
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, domain.RequestStatePending, requests[0].State)
		assert.Equal(t, domain.RequestStatePending, requests[1].State)
	})
}

// =============================================================================
// Test: ApprovePurchase
// =============================================================================

func testApprovePurchase(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("approval settles payment, transfers ownership, and grants the buyer", func(t *testing.T) {
		seller := newTestPrincipal()
		buyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "sold")
		seedFunds(t, buyer, "92000")
		requestID := seedRequest(t, store, tokenID, buyer, "92000")

		now := time.Now().UTC()
		result, err := store.ApprovePurchase(ctx, requestID, seller, now)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, domain.RequestStateApproved, result.Approved.State)
		require.NotNil(t, result.Approved.Settlement)
		assert.Equal(t, domain.SettlementPayout, *result.Approved.Settlement)
		require.NotNil(t, result.Approved.SettledAt)

		assert.Equal(t, seller, result.PreviousOwner)
		assert.Equal(t, buyer, result.Collectible.Owner)
		assert.Empty(t, result.RejectedSiblings)

		requireBalance(t, seller, "92000")
		requireBalance(t, buyer, "0")
		requireBalance(t, domain.EscrowPrincipal, "0")

		// the buyer can now read every confidential field
		for _, handle := range result.Collectible.HandlesInFieldOrder() {
			_, err := suiteVault.Read(ctx, handle, buyer)
			require.NoError(t, err)
		}

		entries, err := store.GetProvenance(ctx, tokenID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, seller, entries[0].FromOwner)
		assert.Equal(t, buyer, entries[0].ToOwner)
		assert.Equal(t, domain.Amount("92000"), entries[0].Price)
		assert.Equal(t, requestID, entries[0].RequestID)
	})

	t.Run("approval cascades rejection and refund to competing offers", func(t *testing.T) {
		seller := newTestPrincipal()
		loserA := newTestPrincipal()
		winner := newTestPrincipal()
		loserB := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "auctioned")
		seedFunds(t, loserA, "100")
		seedFunds(t, winner, "250")
		seedFunds(t, loserB, "300")

		loserAReq := seedRequest(t, store, tokenID, loserA, "100")
		winnerReq := seedRequest(t, store, tokenID, winner, "250")
		loserBReq := seedRequest(t, store, tokenID, loserB, "300")

		result, err := store.ApprovePurchase(ctx, winnerReq, seller, time.Now().UTC())
		require.NoError(t, err)

		require.Len(t, result.RejectedSiblings, 2)
		assert.Equal(t, loserAReq, result.RejectedSiblings[0].ID)
		assert.Equal(t, loserBReq, result.RejectedSiblings[1].ID)
		for _, sibling := range result.RejectedSiblings {
			assert.Equal(t, domain.RequestStateRejected, sibling.State)
			require.NotNil(t, sibling.Settlement)
			assert.Equal(t, domain.SettlementRefund, *sibling.Settlement)
			require.NotNil(t, sibling.SettledAt)
		}

		// losers are made whole, the seller receives the winning offer,
		// escrow holds nothing
		requireBalance(t, loserA, "100")
		requireBalance(t, loserB, "300")
		requireBalance(t, winner, "0")
		requireBalance(t, seller, "250")
		requireBalance(t, domain.EscrowPrincipal, "0")
	})

	t.Run("only the current owner can approve", func(t *testing.T) {
		seller := newTestPrincipal()
		buyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "guarded")
		seedFunds(t, buyer, "10")
		requestID := seedRequest(t, store, tokenID, buyer, "10")

		_, err := store.ApprovePurchase(ctx, requestID, newTestPrincipal(), time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		request, err := store.GetPurchaseRequest(ctx, requestID)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestStatePending, request.State)
	})

	t.Run("terminal requests cannot be approved again", func(t *testing.T) {
		seller := newTestPrincipal()
		buyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "once")
		seedFunds(t, buyer, "10")
		requestID := seedRequest(t, store, tokenID, buyer, "10")

		_, err := store.ApprovePurchase(ctx, requestID, seller, time.Now().UTC())
		require.NoError(t, err)

		_, err = store.ApprovePurchase(ctx, requestID, seller, time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrNotPending)

		// the purchase settled exactly once
		requireBalance(t, seller, "10")
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := store.ApprovePurchase(ctx, 999999, newTestPrincipal(), time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("resale chains provenance entries in order", func(t *testing.T) {
		firstOwner := newTestPrincipal()
		secondOwner := newTestPrincipal()
		thirdOwner := newTestPrincipal()
		tokenID := seedCollectible(t, store, firstOwner, "resold")
		seedFunds(t, secondOwner, "100")
		seedFunds(t, thirdOwner, "150")

		firstReq := seedRequest(t, store, tokenID, secondOwner, "100")
		_, err := store.ApprovePurchase(ctx, firstReq, firstOwner, time.Now().UTC())
		require.NoError(t, err)

		secondReq := seedRequest(t, store, tokenID, thirdOwner, "150")
		_, err = store.ApprovePurchase(ctx, secondReq, secondOwner, time.Now().UTC())
		require.NoError(t, err)

		entries, err := store.GetProvenance(ctx, tokenID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, firstOwner, entries[0].FromOwner)
		assert.Equal(t, secondOwner, entries[0].ToOwner)
		assert.Equal(t, secondOwner, entries[1].FromOwner)
		assert.Equal(t, thirdOwner, entries[1].ToOwner)

		// earlier owners keep their residual read grants
		collectible, err := store.GetCollectible(ctx, tokenID)
		require.NoError(t, err)
		for _, handle := range collectible.HandlesInFieldOrder() {
			_, err := suiteVault.Read(ctx, handle, firstOwner)
			require.NoError(t, err)
			_, err = suiteVault.Read(ctx, handle, thirdOwner)
			require.NoError(t, err)
		}
	})
}

// =============================================================================
// Test: RejectPurchase
// =============================================================================

func testRejectPurchase(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("rejection refunds the buyer and keeps ownership", func(t *testing.T) {
		seller := newTestPrincipal()
		buyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "declined")
		seedFunds(t, buyer, "500")
		requestID := seedRequest(t, store, tokenID, buyer, "500")

		rejected, err := store.RejectPurchase(ctx, requestID, seller, time.Now().UTC())
		require.NoError(t, err)
		require.NotNil(t, rejected)

		assert.Equal(t, domain.RequestStateRejected, rejected.State)
		require.NotNil(t, rejected.Settlement)
		assert.Equal(t, domain.SettlementRefund, *rejected.Settlement)

		requireBalance(t, buyer, "500")
		requireBalance(t, domain.EscrowPrincipal, "0")

		collectible, err := store.GetCollectible(ctx, tokenID)
		require.NoError(t, err)
		assert.Equal(t, seller, collectible.Owner)
	})

	t.Run("only the current owner can reject", func(t *testing.T) {
		seller := newTestPrincipal()
		buyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "protected")
		seedFunds(t, buyer, "10")
		requestID := seedRequest(t, store, tokenID, buyer, "10")

		_, err := store.RejectPurchase(ctx, requestID, buyer, time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("terminal requests cannot be rejected again", func(t *testing.T) {
		seller := newTestPrincipal()
		buyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "final")
		seedFunds(t, buyer, "10")
		requestID := seedRequest(t, store, tokenID, buyer, "10")

		_, err := store.RejectPurchase(ctx, requestID, seller, time.Now().UTC())
		require.NoError(t, err)

		_, err = store.RejectPurchase(ctx, requestID, seller, time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrNotPending)

		// the refund happened exactly once
		requireBalance(t, buyer, "10")
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := store.RejectPurchase(ctx, 999999, newTestPrincipal(), time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// =============================================================================
// Test: Request views
// =============================================================================

func testRequestViews(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("owner pending view tracks ownership and settlement", func(t *testing.T) {
		alice := newTestPrincipal()
		bob := newTestPrincipal()
		carol := newTestPrincipal()
		aliceToken := seedCollectible(t, store, alice, "alice-inbox")
		bobToken := seedCollectible(t, store, bob, "bob-inbox")
		seedFunds(t, carol, "300")

		aliceReq := seedRequest(t, store, aliceToken, carol, "100")
		seedRequest(t, store, bobToken, carol, "200")

		pending, err := store.GetOwnerPendingRequests(ctx, alice)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, aliceReq, pending[0].ID)

		_, err = store.RejectPurchase(ctx, aliceReq, alice, time.Now().UTC())
		require.NoError(t, err)

		pending, err = store.GetOwnerPendingRequests(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("pending view follows the collectible to its new owner", func(t *testing.T) {
		seller := newTestPrincipal()
		firstBuyer := newTestPrincipal()
		secondBuyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "handover")
		seedFunds(t, firstBuyer, "100")
		seedFunds(t, secondBuyer, "100")

		firstReq := seedRequest(t, store, tokenID, firstBuyer, "100")
		_, err := store.ApprovePurchase(ctx, firstReq, seller, time.Now().UTC())
		require.NoError(t, err)

		secondReq := seedRequest(t, store, tokenID, secondBuyer, "100")

		pending, err := store.GetOwnerPendingRequests(ctx, seller)
		require.NoError(t, err)
		assert.Empty(t, pending)

		pending, err = store.GetOwnerPendingRequests(ctx, firstBuyer)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, secondReq, pending[0].ID)
	})

	t.Run("buyer view keeps terminal requests", func(t *testing.T) {
		seller := newTestPrincipal()
		buyer := newTestPrincipal()
		tokenID := seedCollectible(t, store, seller, "history")
		seedFunds(t, buyer, "30")

		first := seedRequest(t, store, tokenID, buyer, "10")
		_, err := store.RejectPurchase(ctx, first, seller, time.Now().UTC())
		require.NoError(t, err)

		second := seedRequest(t, store, tokenID, buyer, "20")

		requests, err := store.GetBuyerRequests(ctx, buyer)
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, first, requests[0].ID)
		assert.Equal(t, domain.RequestStateRejected, requests[0].State)
		assert.Equal(t, second, requests[1].ID)
		assert.Equal(t, domain.RequestStatePending, requests[1].State)
	})
}

// =============================================================================
// Test Suite Runner
// =============================================================================

// RunStoreTests runs the complete store test suite
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateCollectible", testCreateCollectible},
		{"GetCollectibles", testGetCollectibles},
		{"CreatePurchaseRequest", testCreatePurchaseRequest},
		{"ApprovePurchase", testApprovePurchase},
		{"RejectPurchase", testRejectPurchase},
		{"RequestViews", testRequestViews},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
