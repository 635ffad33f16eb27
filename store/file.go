package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/jsphweid/fretdex/util"
)

type fileState = map[string]map[string]string

// File keeps every view's selection in one gob file.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) read() (fileState, error) {
	state, err := util.ReadBinary[fileState](f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(fileState), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading selections: %w", err)
	}
	if state == nil {
		state = make(fileState)
	}
	return state, nil
}

func (f *File) Load(_ context.Context, view string) (Selection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.read()
	if err != nil {
		return Selection{}, err
	}
	values, ok := state[view]
	if !ok {
		return Selection{}, ErrNotFound
	}
	return clone(Selection{View: view, Values: values}), nil
}

func (f *File) Save(_ context.Context, sel Selection) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.read()
	if err != nil {
		return err
	}
	state[sel.View] = clone(sel).Values
	return util.WriteBinary(f.path, state)
}
