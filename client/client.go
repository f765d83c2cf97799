package client

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"github.com/sv/mcp-paradex-go/models"
)

var (
	// ErrNotAuthenticated is returned when an authenticated endpoint is
	// requested with an unauthenticated client.
	ErrNotAuthenticated = errors.New("client: not authenticated")

	// ErrNilDialer is returned by a Provider constructed without a dial
	// function.
	ErrNilDialer = errors.New("client: nil dialer")
)

// Client is the Paradex API surface consumed by the endpoint handlers.
// Every call is blocking and honors the supplied context.
type Client interface {
	// SystemState reports the exchange's operational state.
	SystemState(ctx context.Context) (models.SystemState, error)

	// MarketsSummary lists the rolling summaries of every market, or of
	// one market when symbol is non-empty.
	MarketsSummary(ctx context.Context, symbol string) ([]models.MarketSummary, error)

	// Positions lists the account's positions. Authenticated.
	Positions(ctx context.Context) ([]models.Position, error)

	// OpenOrders lists the account's open orders, optionally scoped to
	// one market. Authenticated.
	OpenOrders(ctx context.Context, market string) ([]models.OrderState, error)

	// Fills lists the account's fills, optionally scoped to one market.
	// Authenticated.
	Fills(ctx context.Context, market string) ([]models.Fill, error)

	// Vaults lists the exchange's vaults.
	Vaults(ctx context.Context) ([]models.Vault, error)

	// IsAuthenticated reports whether the connection carries account
	// credentials.
	IsAuthenticated() bool
}

// DialFunc establishes a connection to the exchange.
type DialFunc func(ctx context.Context, cfg Config) (Client, error)

// Provider hands out a lazily dialed, shared Client. The first caller
// dials; concurrent callers wait for that dial and share its result. A
// dial error is returned to the caller and not cached.
type Provider struct {
	cfg  Config
	dial DialFunc

	mu  sync.Mutex
	cur atomic.Pointer[Client]
}

// NewProvider builds a Provider around a dial function.
func NewProvider(cfg Config, dial DialFunc) *Provider {
	return &Provider{cfg: cfg, dial: dial}
}

// Get returns the shared client, dialing on first use.
func (p *Provider) Get(ctx context.Context) (Client, error) {
	if c := p.cur.Load(); c != nil {
		return *c, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Re-check under the lock: another caller may have dialed while we
	// waited.
	if c := p.cur.Load(); c != nil {
		return *c, nil
	}

	if p.dial == nil {
		return nil, ErrNilDialer
	}

	c, err := p.dial(ctx, p.cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "dial paradex %s", p.cfg.Environment)
	}

	p.cur.Store(&c)
	logs.Infof("paradex client connected, environment: %s, authenticated: %t",
		p.cfg.Environment, c.IsAuthenticated())

	return c, nil
}

// Authenticated returns the shared client and fails with
// ErrNotAuthenticated when it carries no account credentials.
func (p *Provider) Authenticated(ctx context.Context) (Client, error) {
	c, err := p.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !c.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	return c, nil
}
