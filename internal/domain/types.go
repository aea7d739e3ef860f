package domain

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EscrowPrincipal is the reserved account under which the ledger holds
// escrowed funds pending resolution of purchase requests.
const EscrowPrincipal = "escrow:market-ledger"

// LedgerPrincipal is the ledger process itself. It is granted decryption
// rights on every confidential field for internal bookkeeping.
const LedgerPrincipal = "ledger:market-ledger"

// Principal is an address-like identifier for a market participant.
// Principals are normalized to lowercase hex form.
type Principal string

// NewPrincipal validates and normalizes a hex address into a Principal.
func NewPrincipal(address string) (Principal, error) {
	if !common.IsHexAddress(address) {
		return "", ErrInvalidPrincipal
	}
	return Principal(strings.ToLower(common.HexToAddress(address).Hex())), nil
}

func (p Principal) String() string {
	return string(p)
}

// Valid reports whether the principal is a well-formed hex address or
// one of the reserved ledger principals.
func (p Principal) Valid() bool {
	return p == EscrowPrincipal || p == LedgerPrincipal || common.IsHexAddress(string(p))
}

// Amount is a non-negative integer value in the market's base unit,
// carried as a decimal string to support up to 78 digits (wei-scale).
type Amount string

// AmountZero is the zero value for escrow arithmetic.
const AmountZero Amount = "0"

// Valid reports whether the amount parses as a non-negative integer
// of at most 78 decimal digits.
func (a Amount) Valid() bool {
	s := string(a)
	if s == "" || len(s) > 78 {
		return false
	}
	n, ok := new(big.Int).SetString(s, 10)
	return ok && n.Sign() >= 0 && n.String() == s
}

// Positive reports whether the amount is valid and strictly greater than zero.
func (a Amount) Positive() bool {
	if !a.Valid() {
		return false
	}
	n, _ := new(big.Int).SetString(string(a), 10)
	return n.Sign() > 0
}

func (a Amount) String() string {
	return string(a)
}

// RequestState is the lifecycle state of a purchase request.
// Pending is initial; Approved and Rejected are terminal and a request
// transitions exactly once.
type RequestState string

const (
	RequestStatePending  RequestState = "pending"
	RequestStateApproved RequestState = "approved"
	RequestStateRejected RequestState = "rejected"
)

// Terminal reports whether the state is a terminal state.
func (s RequestState) Terminal() bool {
	return s == RequestStateApproved || s == RequestStateRejected
}

// Settlement records which party received a resolved request's escrow.
type Settlement string

const (
	// SettlementPayout means the escrowed offer was paid to the pre-transfer owner.
	SettlementPayout Settlement = "payout"
	// SettlementRefund means the escrowed offer was returned to the buyer.
	SettlementRefund Settlement = "refund"
)

// MarketEventType identifies a ledger notification.
type MarketEventType string

const (
	EventTypeCollectibleListed    MarketEventType = "collectible_listed"
	EventTypePurchaseRequested    MarketEventType = "purchase_requested"
	EventTypePurchaseApproved     MarketEventType = "purchase_approved"
	EventTypePurchaseRejected     MarketEventType = "purchase_rejected"
	EventTypeCollectiblePurchased MarketEventType = "collectible_purchased"
)

// MarketEvent is a notification emitted after a ledger state change
// commits. Delivery is best-effort; the ledger never depends on it.
type MarketEvent struct {
	EventID     string          `json:"event_id"` // ULID, time-sortable
	Type        MarketEventType `json:"type"`
	TokenID     uint64          `json:"token_id"`
	RequestID   *uint64         `json:"request_id,omitempty"`
	Owner       Principal       `json:"owner,omitempty"`
	Buyer       Principal       `json:"buyer,omitempty"`
	Amount      Amount          `json:"amount,omitempty"`
	Name        string          `json:"name,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

// CollectibleInfo is the public view of a collectible record.
// Unknown token IDs yield the zero value with Exists=false.
type CollectibleInfo struct {
	TokenID  uint64    `json:"token_id"`
	Name     string    `json:"name"`
	ImageURI string    `json:"image_uri"`
	Owner    Principal `json:"owner"`
	ListedAt time.Time `json:"listed_at"`
	Exists   bool      `json:"exists"`
}

// ProvenanceEntry is one ownership transfer in a collectible's audit trail.
type ProvenanceEntry struct {
	From      Principal `json:"from"`
	To        Principal `json:"to"`
	RequestID uint64    `json:"request_id"`
	Price     Amount    `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}
