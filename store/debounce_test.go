package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	*Memory
	mu    sync.Mutex
	saves int
	fail  error
}

func (c *countingStore) Save(ctx context.Context, sel Selection) error {
	c.mu.Lock()
	c.saves++
	c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	return c.Memory.Save(ctx, sel)
}

func (c *countingStore) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

func TestDebouncedCollapsesBursts(t *testing.T) {
	next := &countingStore{Memory: NewMemory()}
	d := NewDebounced(next, 20*time.Millisecond, nil)
	ctx := context.Background()

	for _, root := range []string{"C", "D", "E", "F"} {
		require.NoError(t, d.Save(ctx, Selection{View: "majScale", Values: map[string]string{"root": root}}))
	}

	// pending value is visible before the flush
	got, err := d.Load(ctx, "majScale")
	require.NoError(t, err)
	assert.Equal(t, "F", got.Values["root"])

	assert.Eventually(t, func() bool { return next.count() == 1 }, time.Second, 5*time.Millisecond)
	got, err = next.Load(ctx, "majScale")
	require.NoError(t, err)
	assert.Equal(t, "F", got.Values["root"])
}

func TestDebouncedFlush(t *testing.T) {
	boom := errors.New("disk full")
	next := &countingStore{Memory: NewMemory(), fail: boom}
	d := NewDebounced(next, time.Hour, nil)

	require.NoError(t, d.Save(context.Background(), Selection{View: "a"}))
	require.NoError(t, d.Save(context.Background(), Selection{View: "b"}))

	err := d.Flush(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, next.count())

	// nothing left to write
	assert.NoError(t, d.Flush(context.Background()))
}

// gatedStore blocks every Save until release is closed.
type gatedStore struct {
	*Memory
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) Save(ctx context.Context, sel Selection) error {
	g.entered <- struct{}{}
	<-g.release
	return g.Memory.Save(ctx, sel)
}

func TestDebouncedFlushesInOrder(t *testing.T) {
	next := &gatedStore{Memory: NewMemory(), entered: make(chan struct{}, 2), release: make(chan struct{})}
	d := NewDebounced(next, time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, d.Save(ctx, Selection{View: "majScale", Values: map[string]string{"root": "C"}}))
	first := make(chan error, 1)
	go func() { first <- d.Flush(ctx) }()
	<-next.entered

	// C has left pending but is not written yet
	loaded := make(chan Selection, 1)
	go func() {
		sel, err := d.Load(ctx, "majScale")
		assert.NoError(t, err)
		loaded <- sel
	}()

	require.NoError(t, d.Save(ctx, Selection{View: "majScale", Values: map[string]string{"root": "D"}}))
	second := make(chan error, 1)
	go func() { second <- d.Flush(ctx) }()

	select {
	case <-next.entered:
		t.Fatal("second flush wrote while the first was still writing")
	case <-loaded:
		t.Fatal("load returned while a flush was writing")
	case <-time.After(20 * time.Millisecond):
	}

	close(next.release)
	require.NoError(t, <-first)
	require.NoError(t, <-second)

	got, err := next.Memory.Load(ctx, "majScale")
	require.NoError(t, err)
	assert.Equal(t, "D", got.Values["root"])

	// D was pending or written by the time the load got through
	sel := <-loaded
	assert.Equal(t, "D", sel.Values["root"])
}
