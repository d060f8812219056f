package storage

import (
	"fmt"

	"github.com/goaltime/goaltime/internal/logger"
)

// Chain fans writes out to every backend and reads from the first backend
// that has data. The first backend is the primary; the rest are redundant
// fallbacks that keep data reachable when the primary fails.
type Chain struct {
	backends []Backend
}

func NewChain(backends ...Backend) *Chain {
	return &Chain{backends: backends}
}

func (c *Chain) Name() string {
	return "chain"
}

// Load returns the first non-empty blob in chain order. A failing backend is
// skipped, not fatal; an entirely empty chain yields (nil, nil).
func (c *Chain) Load() ([]byte, error) {
	for _, b := range c.backends {
		data, err := b.Load()
		if err != nil {
			logger.Warn("backend load failed", "backend", b.Name(), "error", err)
			continue
		}
		if data != nil {
			return data, nil
		}
	}
	return nil, nil
}

// Save writes the blob to every backend. It succeeds if at least one write
// lands; individual failures are logged and reflected in Status only.
func (c *Chain) Save(data []byte) error {
	saved := 0
	for _, b := range c.backends {
		if err := b.Save(data); err != nil {
			logger.Warn("backend save failed", "backend", b.Name(), "error", err)
			continue
		}
		saved++
	}
	if saved == 0 {
		return fmt.Errorf("all %d backends failed to save", len(c.backends))
	}
	return nil
}

// Healthy reports whether every backend in the chain is healthy.
func (c *Chain) Healthy() bool {
	for _, b := range c.backends {
		if !b.Healthy() {
			return false
		}
	}
	return true
}

func (c *Chain) Close() error {
	var firstErr error
	for _, b := range c.backends {
		if err := b.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Status reports per-backend health, in chain order.
func (c *Chain) Status() []Status {
	out := make([]Status, len(c.backends))
	for i, b := range c.backends {
		out[i] = Status{Name: b.Name(), Healthy: b.Healthy()}
	}
	return out
}

// Primary returns the first backend in the chain.
func (c *Chain) Primary() Backend {
	if len(c.backends) == 0 {
		return nil
	}
	return c.backends[0]
}
