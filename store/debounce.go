package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Debounced buffers saves and writes them to the wrapped store once no new
// save has arrived for the configured delay. The front end saves on every
// input change, so bursts collapse into one write per view.
type Debounced struct {
	next     Store
	schedule func(f func())
	onError  func(view string, err error)

	// flushing is held across writes to next, so flushes land in order and
	// Load never reads next while a snapshot is half written
	flushing sync.Mutex
	mu       sync.Mutex
	pending  map[string]Selection
}

func NewDebounced(next Store, after time.Duration, onError func(view string, err error)) *Debounced {
	if onError == nil {
		onError = func(string, error) {}
	}
	return &Debounced{
		next:     next,
		schedule: debounce.New(after),
		onError:  onError,
		pending:  make(map[string]Selection),
	}
}

func (d *Debounced) Load(ctx context.Context, view string) (Selection, error) {
	d.flushing.Lock()
	defer d.flushing.Unlock()

	d.mu.Lock()
	sel, ok := d.pending[view]
	d.mu.Unlock()
	if ok {
		return clone(sel), nil
	}
	return d.next.Load(ctx, view)
}

func (d *Debounced) Save(_ context.Context, sel Selection) error {
	d.mu.Lock()
	d.pending[sel.View] = clone(sel)
	d.mu.Unlock()

	d.schedule(func() {
		d.flush(context.Background(), d.onError)
	})
	return nil
}

// Flush writes everything still pending. Call it before shutdown.
func (d *Debounced) Flush(ctx context.Context) error {
	var errs []error
	d.flush(ctx, func(_ string, err error) {
		errs = append(errs, err)
	})
	return errors.Join(errs...)
}

func (d *Debounced) flush(ctx context.Context, onError func(string, error)) {
	d.flushing.Lock()
	defer d.flushing.Unlock()

	d.mu.Lock()
	pending := d.pending
	d.pending = make(map[string]Selection)
	d.mu.Unlock()

	for view, sel := range pending {
		if err := d.next.Save(ctx, sel); err != nil {
			onError(view, err)
		}
	}
}
