package messaging

import (
	"context"

	"github.com/veilart/market-ledger/internal/domain"
)

// Publisher defines the interface for publishing marketplace events to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a marketplace event to the message broker
	PublishEvent(ctx context.Context, event *domain.MarketEvent) error
	// Close closes the connection
	Close()
}
