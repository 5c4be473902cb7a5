package neo4jdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/recipegraph-backend/internal/observability"
	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

type Config struct {
	URI            string        `koanf:"uri" validate:"required"`
	User           string        `koanf:"user"`
	Password       string        `koanf:"password"`
	Database       string        `koanf:"database"`
	TimeoutSeconds int           `koanf:"timeout_seconds" validate:"gt=0"`
	MaxPoolSize    int           `koanf:"max_pool_size" validate:"gt=0"`
	Breaker        BreakerConfig `koanf:"breaker"`
}

// Client is the one explicitly constructed handle to the graph store. It is
// created at startup, shared by every request and closed on shutdown.
type Client struct {
	Driver   neo4j.DriverWithContext
	Database string
	log      *logger.Logger
	guard    *guard
}

func New(ctx context.Context, log *logger.Logger, metrics *observability.Metrics, cfg Config) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("neo4jdb: logger required")
	}
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		return nil, fmt.Errorf("neo4jdb: uri required")
	}
	user := strings.TrimSpace(cfg.User)
	if user == "" {
		user = "neo4j"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxPool := cfg.MaxPoolSize
	if maxPool <= 0 {
		maxPool = 50
	}

	auth := neo4j.BasicAuth(user, cfg.Password, "")
	driver, err := neo4j.NewDriverWithContext(uri, auth, func(c *neo4j.Config) {
		c.MaxConnectionPoolSize = maxPool
		c.SocketConnectTimeout = timeout
	})
	if err != nil {
		return nil, fmt.Errorf("neo4jdb: init driver: %w", err)
	}

	vctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(vctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: neo4jdb: verify connectivity: %w", errs.ErrStoreUnavailable, err)
	}

	clientLog := log.With("client", "Neo4jDB")
	clientLog.Info("neo4j connected", "uri", uri, "database", cfg.Database, "max_pool", maxPool)
	return &Client{
		Driver:   driver,
		Database: strings.TrimSpace(cfg.Database),
		log:      clientLog,
		guard:    newGuard(clientLog, metrics, cfg.Breaker),
	}, nil
}

// NewWithDriver wraps an existing driver. Used by integration tests.
func NewWithDriver(driver neo4j.DriverWithContext, database string, log *logger.Logger, metrics *observability.Metrics) *Client {
	if log == nil {
		log = logger.NewNop()
	}
	clientLog := log.With("client", "Neo4jDB")
	return &Client{
		Driver:   driver,
		Database: database,
		log:      clientLog,
		guard:    newGuard(clientLog, metrics, BreakerConfig{}),
	}
}

func (c *Client) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: c.Database,
	})
}

// ExecuteRead runs work in one managed read transaction behind the circuit breaker.
// work may be retried by the driver on transient failures and must be idempotent.
func (c *Client) ExecuteRead(ctx context.Context, op string, work func(tx neo4j.ManagedTransaction) (any, error)) (any, error) {
	return c.execute(ctx, op, neo4j.AccessModeRead, work)
}

// ExecuteWrite runs work in one managed write transaction behind the circuit breaker.
// The transaction commits only if work returns a nil error.
func (c *Client) ExecuteWrite(ctx context.Context, op string, work func(tx neo4j.ManagedTransaction) (any, error)) (any, error) {
	return c.execute(ctx, op, neo4j.AccessModeWrite, work)
}

func (c *Client) execute(ctx context.Context, op string, mode neo4j.AccessMode, work func(tx neo4j.ManagedTransaction) (any, error)) (any, error) {
	if c == nil || c.Driver == nil {
		return nil, fmt.Errorf("%w: %s: neo4j client not initialized", errs.ErrStoreUnavailable, op)
	}
	return c.guard.run(op, func() (any, error) {
		session := c.session(ctx, mode)
		defer session.Close(ctx)
		if mode == neo4j.AccessModeWrite {
			return session.ExecuteWrite(ctx, work)
		}
		return session.ExecuteRead(ctx, work)
	})
}

// Run executes a single auto-commit statement and discards its result. Schema
// statements (constraints, indexes) cannot run inside managed transactions
// together with data writes, so they go through here.
func (c *Client) Run(ctx context.Context, op, cypher string, params map[string]any) error {
	if c == nil || c.Driver == nil {
		return fmt.Errorf("%w: %s: neo4j client not initialized", errs.ErrStoreUnavailable, op)
	}
	_, err := c.guard.run(op, func() (any, error) {
		session := c.session(ctx, neo4j.AccessModeWrite)
		defer session.Close(ctx)
		res, err := session.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	return err
}

func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return fmt.Errorf("%w: neo4j client not initialized", errs.ErrStoreUnavailable)
	}
	if err := c.Driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", errs.ErrStoreUnavailable, err)
	}
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := c.Driver.Close(ctx)
	c.Driver = nil
	return err
}

// isDomainError reports errors that describe the request rather than the store.
// They pass through unwrapped and never count against the breaker.
func isDomainError(err error) bool {
	return errors.Is(err, errs.ErrNotFound) ||
		errors.Is(err, errs.ErrInvalidArgument) ||
		errors.Is(err, context.Canceled)
}
