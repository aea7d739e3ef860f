package dto

import (
	"encoding/base64"
	"time"

	"github.com/veilart/market-ledger/internal/domain"
	"github.com/veilart/market-ledger/internal/ledger"
	"github.com/veilart/market-ledger/internal/store/schema"
)

// CollectibleResponse represents a collectible's public view
type CollectibleResponse struct {
	TokenID  uint64           `json:"token_id"`
	Name     string           `json:"name"`
	ImageURI string           `json:"image_uri"`
	Owner    domain.Principal `json:"owner"`
	ListedAt time.Time        `json:"listed_at"`
	Exists   bool             `json:"exists"`
}

// EncryptedFieldResponse represents one confidential attribute
type EncryptedFieldResponse struct {
	Name       string `json:"name"`
	Handle     string `json:"handle"`
	Ciphertext string `json:"ciphertext"` // base64
}

// PurchaseRequestResponse represents a purchase request
type PurchaseRequestResponse struct {
	RequestID   uint64              `json:"request_id"`
	TokenID     uint64              `json:"token_id"`
	Buyer       domain.Principal    `json:"buyer"`
	OfferAmount domain.Amount       `json:"offer_amount"`
	State       domain.RequestState `json:"state"`
	Settlement  *domain.Settlement  `json:"settlement,omitempty"`
	SettledAt   *time.Time          `json:"settled_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ApprovalResponse reports everything a settled approval changed
type ApprovalResponse struct {
	Approved         PurchaseRequestResponse   `json:"approved"`
	Collectible      CollectibleResponse       `json:"collectible"`
	PreviousOwner    domain.Principal          `json:"previous_owner"`
	RejectedSiblings []PurchaseRequestResponse `json:"rejected_siblings"`
}

// ProvenanceEntryResponse represents one ownership transfer
type ProvenanceEntryResponse struct {
	From      domain.Principal `json:"from"`
	To        domain.Principal `json:"to"`
	RequestID uint64           `json:"request_id"`
	Price     domain.Amount    `json:"price"`
	Timestamp time.Time        `json:"timestamp"`
}

// AccountResponse represents an account balance
type AccountResponse struct {
	Principal string        `json:"principal"`
	Balance   domain.Amount `json:"balance"`
}

// FromCollectible maps a stored collectible to its public view
func FromCollectible(c *schema.Collectible) CollectibleResponse {
	return CollectibleResponse{
		TokenID:  c.ID,
		Name:     c.Name,
		ImageURI: c.ImageURI,
		Owner:    c.Owner,
		ListedAt: c.ListedAt,
		Exists:   true,
	}
}

// FromCollectibleInfo maps the service view, unknown tokens included
func FromCollectibleInfo(info *domain.CollectibleInfo) CollectibleResponse {
	return CollectibleResponse{
		TokenID:  info.TokenID,
		Name:     info.Name,
		ImageURI: info.ImageURI,
		Owner:    info.Owner,
		ListedAt: info.ListedAt,
		Exists:   info.Exists,
	}
}

// FromPurchaseRequest maps a stored request
func FromPurchaseRequest(r *schema.PurchaseRequest) PurchaseRequestResponse {
	return PurchaseRequestResponse{
		RequestID:   r.ID,
		TokenID:     r.CollectibleID,
		Buyer:       r.Buyer,
		OfferAmount: r.OfferAmount,
		State:       r.State,
		Settlement:  r.Settlement,
		SettledAt:   r.SettledAt,
		CreatedAt:   r.CreatedAt,
	}
}

// FromPurchaseRequests maps a request list
func FromPurchaseRequests(requests []schema.PurchaseRequest) []PurchaseRequestResponse {
	out := make([]PurchaseRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, FromPurchaseRequest(&requests[i]))
	}
	return out
}

// FromEncryptedFields maps vault reads, base64-encoding the ciphertexts
func FromEncryptedFields(fields []ledger.EncryptedField) []EncryptedFieldResponse {
	out := make([]EncryptedFieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, EncryptedFieldResponse{
			Name:       f.Name,
			Handle:     f.Handle.String(),
			Ciphertext: base64.StdEncoding.EncodeToString(f.Ciphertext),
		})
	}
	return out
}

// FromProvenance maps a transfer history
func FromProvenance(entries []domain.ProvenanceEntry) []ProvenanceEntryResponse {
	out := make([]ProvenanceEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ProvenanceEntryResponse{
			From:      e.From,
			To:        e.To,
			RequestID: e.RequestID,
			Price:     e.Price,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
