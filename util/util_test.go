package util

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeysSorted(m))
	assert.Len(t, GetKeys(m), 3)
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.dat")
	want := map[string]map[string]string{"majScale": {"root": "Eb"}}

	require.NoError(t, WriteBinary(path, want))
	got, err := ReadBinary[map[string]map[string]string](path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadBinaryMissing(t *testing.T) {
	_, err := ReadBinary[map[string]string](filepath.Join(t.TempDir(), "nope.dat"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 3, Min(3, 7))
	assert.Equal(t, uint8(2), Min(uint8(9), uint8(2)))
}
