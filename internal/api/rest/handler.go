package rest

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/veilart/market-ledger/internal/api/middleware"
	"github.com/veilart/market-ledger/internal/api/rest/dto"
	"github.com/veilart/market-ledger/internal/ledger"
	"github.com/veilart/market-ledger/internal/vault"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListCollectible registers a new collectible with encrypted attributes
	// POST /api/v1/collectibles
	ListCollectible(c *gin.Context)

	// GetCollectible retrieves the public view of a collectible
	// GET /api/v1/collectibles/:id
	GetCollectible(c *gin.Context)

	// GetCollectibleMetadata retrieves the confidential fields, grant holders only
	// GET /api/v1/collectibles/:id/metadata
	GetCollectibleMetadata(c *gin.Context)

	// GetCollectibleProvenance retrieves the transfer history of a collectible
	// GET /api/v1/collectibles/:id/provenance
	GetCollectibleProvenance(c *gin.Context)

	// GetCollectibleRequests retrieves every purchase request against a collectible
	// GET /api/v1/collectibles/:id/requests
	GetCollectibleRequests(c *gin.Context)

	// GetOwnerCollectibles retrieves the collectibles currently owned by an address
	// GET /api/v1/owners/:address/collectibles
	GetOwnerCollectibles(c *gin.Context)

	// GetOwnerPendingRequests retrieves the offers awaiting an owner's decision
	// GET /api/v1/owners/:address/requests/pending
	GetOwnerPendingRequests(c *gin.Context)

	// GetBuyerRequests retrieves every request an address ever created
	// GET /api/v1/buyers/:address/requests
	GetBuyerRequests(c *gin.Context)

	// RequestPurchase escrows an offer and opens a pending request
	// POST /api/v1/requests
	RequestPurchase(c *gin.Context)

	// GetPurchaseRequest retrieves a purchase request by ID
	// GET /api/v1/requests/:id
	GetPurchaseRequest(c *gin.Context)

	// ApprovePurchase settles a pending offer on the caller's collectible
	// POST /api/v1/requests/:id/approve
	ApprovePurchase(c *gin.Context)

	// RejectPurchase declines a pending offer and refunds its buyer
	// POST /api/v1/requests/:id/reject
	RejectPurchase(c *gin.Context)

	// Deposit credits spendable value to an account (requires API key)
	// POST /api/v1/accounts/deposit
	Deposit(c *gin.Context)

	// GetAccount retrieves an account balance
	// GET /api/v1/accounts/:address
	GetAccount(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service ledger.Service
}

// NewHandler creates a new REST API handler over the ledger service
func NewHandler(service ledger.Service) Handler {
	return &handler{
		service: service,
	}
}

// listCollectibleRequest is the body of POST /collectibles. Ciphertexts are
// base64, in field order: price, certificate, serial, origin.
type listCollectibleRequest struct {
	Name        string   `json:"name" binding:"required"`
	ImageURI    string   `json:"image_uri" binding:"required"`
	Ciphertexts []string `json:"ciphertexts" binding:"required"`
	Proof       string   `json:"proof" binding:"required"`
}

// requestPurchaseRequest is the body of POST /requests
type requestPurchaseRequest struct {
	TokenID     uint64 `json:"token_id" binding:"required"`
	OfferAmount string `json:"offer_amount" binding:"required"`
}

// depositRequest is the body of POST /accounts/deposit
type depositRequest struct {
	Principal string `json:"principal" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

func (h *handler) ListCollectible(c *gin.Context) {
	caller, ok := middleware.CallerSubject(c)
	if !ok {
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Caller identity required")
		return
	}

	var body listCollectibleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if len(body.Ciphertexts) != vault.FieldCount {
		respondBadRequest(c, fmt.Sprintf("Exactly %d ciphertexts are required", vault.FieldCount))
		return
	}

	var ciphertexts [vault.FieldCount][]byte
	for i, encoded := range body.Ciphertexts {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			respondBadRequest(c, fmt.Sprintf("Ciphertext %d is not valid base64", i), err.Error())
			return
		}
		ciphertexts[i] = data
	}

	collectible, err := h.service.ListCollectible(c.Request.Context(), ledger.ListCollectibleInput{
		Caller:      caller,
		Name:        body.Name,
		ImageURI:    body.ImageURI,
		Ciphertexts: ciphertexts,
		Proof:       body.Proof,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromCollectible(collectible))
}

func (h *handler) GetCollectible(c *gin.Context) {
	tokenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	info, err := h.service.GetCollectible(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCollectibleInfo(info))
}

func (h *handler) GetCollectibleMetadata(c *gin.Context) {
	caller, ok := middleware.CallerSubject(c)
	if !ok {
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Caller identity required")
		return
	}

	tokenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fields, err := h.service.GetEncryptedMetadata(c.Request.Context(), caller, tokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_id": tokenID,
		"fields":   dto.FromEncryptedFields(fields),
	})
}

func (h *handler) GetCollectibleProvenance(c *gin.Context) {
	tokenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.service.GetProvenance(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_id":   tokenID,
		"provenance": dto.FromProvenance(entries),
	})
}

func (h *handler) GetCollectibleRequests(c *gin.Context) {
	tokenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requests, err := h.service.GetTokenPurchaseRequests(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_id": tokenID,
		"requests": dto.FromPurchaseRequests(requests),
	})
}

func (h *handler) GetOwnerCollectibles(c *gin.Context) {
	address := c.Param("address")

	collectibles, err := h.service.GetOwnerCollectibles(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	out := make([]dto.CollectibleResponse, 0, len(collectibles))
	for i := range collectibles {
		out = append(out, dto.FromCollectible(&collectibles[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"owner":        address,
		"collectibles": out,
	})
}

func (h *handler) GetOwnerPendingRequests(c *gin.Context) {
	address := c.Param("address")

	requests, err := h.service.GetOwnerPendingRequests(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"owner":    address,
		"requests": dto.FromPurchaseRequests(requests),
	})
}

func (h *handler) GetBuyerRequests(c *gin.Context) {
	address := c.Param("address")

	requests, err := h.service.GetBuyerRequests(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"buyer":    address,
		"requests": dto.FromPurchaseRequests(requests),
	})
}

func (h *handler) RequestPurchase(c *gin.Context) {
	caller, ok := middleware.CallerSubject(c)
	if !ok {
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Caller identity required")
		return
	}

	var body requestPurchaseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	request, err := h.service.RequestPurchase(c.Request.Context(), ledger.RequestPurchaseInput{
		Buyer:       caller,
		TokenID:     body.TokenID,
		OfferAmount: body.OfferAmount,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPurchaseRequest(request))
}

func (h *handler) GetPurchaseRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.service.GetPurchaseRequest(c.Request.Context(), requestID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if request == nil {
		respondNotFound(c, "Purchase request not found")
		return
	}

	c.JSON(http.StatusOK, dto.FromPurchaseRequest(request))
}

func (h *handler) ApprovePurchase(c *gin.Context) {
	caller, ok := middleware.CallerSubject(c)
	if !ok {
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Caller identity required")
		return
	}

	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.service.ApprovePurchase(c.Request.Context(), requestID, caller)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApprovalResponse{
		Approved:         dto.FromPurchaseRequest(result.Approved),
		Collectible:      dto.FromCollectible(result.Collectible),
		PreviousOwner:    result.PreviousOwner,
		RejectedSiblings: dto.FromPurchaseRequests(result.RejectedSiblings),
	})
}

func (h *handler) RejectPurchase(c *gin.Context) {
	caller, ok := middleware.CallerSubject(c)
	if !ok {
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Caller identity required")
		return
	}

	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.service.RejectPurchase(c.Request.Context(), requestID, caller)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPurchaseRequest(request))
}

func (h *handler) Deposit(c *gin.Context) {
	var body depositRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.service.Deposit(c.Request.Context(), body.Principal, body.Amount); err != nil {
		respondDomainError(c, err)
		return
	}

	balance, err := h.service.GetBalance(c.Request.Context(), body.Principal)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{
		Principal: body.Principal,
		Balance:   balance,
	})
}

func (h *handler) GetAccount(c *gin.Context) {
	address := c.Param("address")

	balance, err := h.service.GetBalance(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{
		Principal: address,
		Balance:   balance,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// parseIDParam parses a numeric path parameter, responding on failure
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid %s parameter", name), err.Error())
		return 0, false
	}
	return id, true
}
