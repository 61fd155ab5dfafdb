package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerCollapsesBurstToLastCall(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	done := make(chan int32, 1)

	for i := int32(1); i <= 5; i++ {
		value := i
		d.Trigger(func() {
			fired.Store(value)
			done <- value
		})
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case value := <-done:
		assert.Equal(t, int32(5), value, "only the last triggered callback should fire")
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}

	// No earlier callback sneaks in afterwards.
	select {
	case value := <-done:
		t.Fatalf("unexpected extra callback fired with value %d", value)
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, int32(5), fired.Load())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	fired := make(chan struct{}, 1)
	d.Trigger(func() { fired <- struct{}{} })
	d.Stop()

	select {
	case <-fired:
		t.Fatal("callback fired after Stop")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncerDefaultsInterval(t *testing.T) {
	d := NewDebouncer(0)
	require.Equal(t, DefaultSearchDebounce, d.interval)
}
