package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/veilart/market-ledger/internal/adapter"
	"github.com/veilart/market-ledger/internal/domain"
	"github.com/veilart/market-ledger/internal/logger"
	"github.com/veilart/market-ledger/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL             string
	StreamName      string
	MaxReconnects   int
	ReconnectWait   time.Duration
	ConnectionName  string
	PublishTimeout  time.Duration
	MaxPublishRetry time.Duration
}

type publisher struct {
	nc              adapter.NatsConn
	js              adapter.JetStream
	streamName      string
	json            adapter.JSON
	maxPublishRetry time.Duration
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	maxRetry := cfg.MaxPublishRetry
	if maxRetry == 0 {
		maxRetry = 30 * time.Second
	}

	return &publisher{
		nc:              nc,
		js:              js,
		streamName:      cfg.StreamName,
		json:            jsonAdapter,
		maxPublishRetry: maxRetry,
	}, nil
}

// PublishEvent publishes a marketplace event to NATS JetStream. Transient
// broker errors are retried with exponential backoff until the retry window
// or the context expires.
func (p *publisher) PublishEvent(ctx context.Context, event *domain.MarketEvent) error {
	logger.DebugCtx(ctx, "publishing market event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := p.buildSubject(event)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = p.maxPublishRetry

	err = backoff.Retry(func() error {
		_, err := p.js.Publish(ctx, subject, data)
		return err
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event.
// Format: market.events.{event_type}, e.g. market.events.purchase_approved
func (p *publisher) buildSubject(event *domain.MarketEvent) string {
	return fmt.Sprintf("market.events.%s", event.Type)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
