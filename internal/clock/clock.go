package clock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tokengrip/internal/eventbus"
)

// ClockService publishes a ClockTickEvent at a fixed interval
type ClockService interface {
	Start(ctx context.Context) error
	Stop()
}

// clockService is the concrete implementation
type clockService struct {
	bus      eventbus.EventBus
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewClockService creates a clock ticking every interval
func NewClockService(bus eventbus.EventBus, interval time.Duration) ClockService {
	return &clockService{
		bus:      bus,
		interval: interval,
		now:      time.Now,
	}
}

// Start begins ticking in the background until ctx is done or Stop is called
func (cs *clockService) Start(ctx context.Context) error {
	if cs.interval <= 0 {
		return fmt.Errorf("invalid tick interval %v", cs.interval)
	}

	cs.mu.Lock()
	if cs.running {
		cs.mu.Unlock()
		return fmt.Errorf("clock already running")
	}
	cs.running = true
	tickCtx, cancel := context.WithCancel(ctx)
	cs.cancel = cancel
	cs.mu.Unlock()

	cs.wg.Add(1)
	go func() {
		defer cs.wg.Done()
		defer func() {
			cs.mu.Lock()
			cs.running = false
			cs.cancel = nil
			cs.mu.Unlock()
		}()

		ticker := time.NewTicker(cs.interval)
		defer ticker.Stop()

		for {
			select {
			case <-tickCtx.Done():
				return
			case <-ticker.C:
				cs.bus.Publish(eventbus.ClockTickEvent{At: cs.now()})
			}
		}
	}()

	return nil
}

// Stop stops ticking and waits for the background goroutine to exit
func (cs *clockService) Stop() {
	cs.mu.Lock()
	cancel := cs.cancel
	cs.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	cs.wg.Wait()
}
