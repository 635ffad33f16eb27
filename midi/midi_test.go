package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// writeTwoChords encodes a C major triad followed by G7 one beat later.
func writeTwoChords(t *testing.T) []byte {
	t.Helper()
	clock := smf.MetricTicks(96)

	var tr smf.Track
	for _, key := range []uint8{60, 64, 67} {
		tr.Add(0, gomidi.NoteOn(0, key, 100))
	}
	tr.Add(clock.Ticks4th(), gomidi.NoteOff(0, 60))
	tr.Add(0, gomidi.NoteOff(0, 64))
	tr.Add(0, gomidi.NoteOff(0, 67))
	for _, key := range []uint8{55, 59, 62, 65} {
		tr.Add(0, gomidi.NoteOn(0, key, 100))
	}
	tr.Add(clock.Ticks4th(), gomidi.NoteOn(0, 55, 0))
	tr.Add(0, gomidi.NoteOff(0, 59))
	tr.Add(0, gomidi.NoteOff(0, 62))
	tr.Add(0, gomidi.NoteOff(0, 65))
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	require.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestChords(t *testing.T) {
	s, err := Read(bytes.NewReader(writeTwoChords(t)))
	require.NoError(t, err)

	chords := Chords(s)
	require.Len(t, chords, 2)

	assert := assert.New(t)
	assert.Equal(model.Notes{60, 64, 67}, chords[0].Notes)
	assert.Equal(model.Notes{55, 59, 62, 65}, chords[1].Notes)
	assert.True(chords[0].FormedByNoteOn)
	assert.Less(chords[0].Offset, chords[1].Offset)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.mid")
	require.NoError(t, os.WriteFile(path, writeTwoChords(t), 0o644))

	s, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, Chords(s), 2)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a midi file")))
	assert.Error(t, err)
}

// brokenReader fails the way a corrupt file trips the decoder: with a
// runtime panic rather than an error.
type brokenReader struct{}

func (brokenReader) Read(p []byte) (int, error) {
	var idx []int
	return idx[len(p)], nil
}

func TestReadRecoversFromDecoderPanics(t *testing.T) {
	s, err := Read(brokenReader{})
	assert.Nil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing midi file")
}

func TestPitchClasses(t *testing.T) {
	got := PitchClasses(model.Notes{55, 59, 62, 65, 67})
	assert.Equal(t, []pitch.Class{7, 11, 2, 5}, got)
}
