package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventTokenDecoded, func(e DomainEvent) { got <- e })

	b.Publish(TokenDecodedEvent{})

	select {
	case e := <-got:
		assert.Equal(t, EventTokenDecoded, e.Type())
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	var ticks atomic.Int32
	b.Subscribe(EventClockTick, func(DomainEvent) { ticks.Add(1) })

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { close(done) })

	b.Publish(ErrorEvent{Message: "boom"})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("error event was not delivered")
	}
	assert.Equal(t, int32(0), ticks.Load())
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventClockTick, func(DomainEvent) { calls.Add(1) })
	unsubscribe()

	done := make(chan struct{})
	b.Subscribe(EventClockTick, func(DomainEvent) { close(done) })
	b.Publish(ClockTickEvent{At: time.Now()})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("handler failure") })

	done := make(chan struct{}, 2)
	b.Subscribe(EventError, func(DomainEvent) { done <- struct{}{} })

	b.Publish(ErrorEvent{})
	b.Publish(ErrorEvent{})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("bus stopped delivering after a handler panic")
		}
	}
}

func TestPublishAfterClose(t *testing.T) {
	b := New()
	b.Close()
	require.NotPanics(t, func() {
		b.Publish(ErrorEvent{})
		b.Close()
	})
}
