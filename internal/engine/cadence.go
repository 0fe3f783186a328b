package engine

import (
	"sync"
	"time"
)

// Cadence drives the engine's per-frame tick, typically once per display
// refresh. Stop must not wait for an in-flight tick.
type Cadence interface {
	Start(tick func(now time.Time))
	Stop()
}

// TickerCadence ticks at a fixed interval from its own goroutine.
type TickerCadence struct {
	interval time.Duration

	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
}

func NewTickerCadence(fps int) *TickerCadence {
	if fps <= 0 {
		fps = 60
	}
	return &TickerCadence{interval: time.Second / time.Duration(fps)}
}

func (c *TickerCadence) Start(tick func(now time.Time)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker != nil {
		return
	}
	c.ticker = time.NewTicker(c.interval)
	c.done = make(chan struct{})
	go func(t *time.Ticker, done <-chan struct{}) {
		for {
			select {
			case <-done:
				return
			case now := <-t.C:
				tick(now)
			}
		}
	}(c.ticker, c.done)
}

func (c *TickerCadence) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
}
