// Package store persists the last selection made in each view of the
// front end. The music theory packages never use it.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/jsphweid/fretdex/util"
)

var ErrNotFound = errors.New("selection not found")

// Selection is the raw root/quality/mode strings a view last showed, keyed
// the way the view names them ("root", "chord", "first.root", ...).
type Selection struct {
	View   string
	Values map[string]string
}

type Store interface {
	Load(ctx context.Context, view string) (Selection, error)
	Save(ctx context.Context, sel Selection) error
}

func clone(sel Selection) Selection {
	values := make(map[string]string, len(sel.Values))
	for k, v := range sel.Values {
		values[k] = v
	}
	return Selection{View: sel.View, Values: values}
}

type Memory struct {
	mu    sync.RWMutex
	views map[string]Selection
}

func NewMemory() *Memory {
	return &Memory{views: make(map[string]Selection)}
}

func (m *Memory) Load(_ context.Context, view string) (Selection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sel, ok := m.views[view]
	if !ok {
		return Selection{}, ErrNotFound
	}
	return clone(sel), nil
}

func (m *Memory) Save(_ context.Context, sel Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views[sel.View] = clone(sel)
	return nil
}

func (m *Memory) Views() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return util.GetKeysSorted(m.views)
}
