package commands

import (
	"context"
	"time"
)

// DefaultTransactionTimeout bounds the unit-of-work span when no explicit
// timeout is configured. A stalled database aborts the transaction instead
// of holding the handler and its connection open.
const DefaultTransactionTimeout = 10 * time.Second

type transactionConfig struct {
	timeout time.Duration
}

// TransactionOption customizes how a command handler runs its transaction.
type TransactionOption func(*transactionConfig)

// WithTransactionTimeout overrides the deadline applied to the unit-of-work
// span. Non-positive values fall back to DefaultTransactionTimeout.
func WithTransactionTimeout(timeout time.Duration) TransactionOption {
	return func(c *transactionConfig) {
		c.timeout = timeout
	}
}

func newTransactionConfig(opts []TransactionOption) transactionConfig {
	cfg := transactionConfig{timeout: DefaultTransactionTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.timeout <= 0 {
		cfg.timeout = DefaultTransactionTimeout
	}
	return cfg
}

func (c transactionConfig) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}
