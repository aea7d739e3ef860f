package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilart/market-ledger/internal/domain"
)

func TestNewPrincipal(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    domain.Principal
		wantErr bool
	}{
		{
			name:    "valid checksummed address",
			address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
			want:    "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
		},
		{
			name:    "valid lowercase address",
			address: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
			want:    "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
		},
		{
			name:    "missing prefix",
			address: "ab5801a7d398351b8be11c439e05c5b3259aec9",
			wantErr: true,
		},
		{
			name:    "too short",
			address: "0x1234",
			wantErr: true,
		},
		{
			name:    "empty",
			address: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewPrincipal(tt.address)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrincipalValid(t *testing.T) {
	assert.True(t, domain.Principal("0xab5801a7d398351b8be11c439e05c5b3259aec9b").Valid())
	assert.True(t, domain.Principal(domain.EscrowPrincipal).Valid())
	assert.False(t, domain.Principal("alice").Valid())
	assert.False(t, domain.Principal("").Valid())
}

func TestAmountValid(t *testing.T) {
	tests := []struct {
		amount   domain.Amount
		valid    bool
		positive bool
	}{
		{"0", true, false},
		{"1", true, true},
		{"1000000000000000000", true, true}, // 1 ETH in wei
		{"92000", true, true},
		{"", false, false},
		{"-1", false, false},
		{"1.5", false, false},
		{"0x10", false, false},
		{"007", false, false}, // no leading zeros, must round-trip
	}

	for _, tt := range tests {
		t.Run(string(tt.amount), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.amount.Valid())
			assert.Equal(t, tt.positive, tt.amount.Positive())
		})
	}

	// 79 digits exceeds numeric(78,0)
	digits := make([]byte, 79)
	for i := range digits {
		digits[i] = '9'
	}
	assert.False(t, domain.Amount(digits).Valid())
}

func TestRequestStateTerminal(t *testing.T) {
	assert.False(t, domain.RequestStatePending.Terminal())
	assert.True(t, domain.RequestStateApproved.Terminal())
	assert.True(t, domain.RequestStateRejected.Terminal())
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(domain.ErrSelfPurchase, domain.ErrInvalidInput))
	assert.True(t, errors.Is(domain.ErrZeroOffer, domain.ErrInvalidInput))
	assert.True(t, errors.Is(domain.ErrEmptyField, domain.ErrInvalidInput))
	assert.True(t, errors.Is(domain.ErrInsufficientFunds, domain.ErrPaymentFailed))
	assert.False(t, errors.Is(domain.ErrNotPending, domain.ErrInvalidInput))
}
