package fretboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jsphweid/fretdex/highlight"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutFindsEveryPosition(t *testing.T) {
	// E sits on frets 0 and 12 of both E strings and once on each of the others
	dots := Layout(Options{Frets: 12}, []pitch.Class{4}, []string{"3M"}, nil)

	assert := assert.New(t)
	assert.Len(dots, 8)
	for _, d := range dots {
		assert.Equal("E", d.Note)
		assert.Equal("3M/E", d.Text())
		assert.Empty(d.Fill)
	}
	assert.Equal(Dot{String: 1, Fret: 0, Class: 4, Note: "E", Label: "3M"}, dots[0])
}

func TestLayoutCarriesFills(t *testing.T) {
	fills := highlight.Fills{7: highlight.RootFill}
	dots := Layout(Options{Frets: 3}, []pitch.Class{7, 11}, []string{"1P", "3M"}, fills)

	var g, b int
	for _, d := range dots {
		switch d.Note {
		case "G":
			g++
			assert.Equal(t, highlight.RootFill, d.Fill)
		case "B":
			b++
			assert.Empty(t, d.Fill)
		}
	}
	// G: 1/3, 3/0, 6/3. B: 2/0, 5/2
	assert.Equal(t, 3, g)
	assert.Equal(t, 2, b)
}

func TestLayoutClampsFrets(t *testing.T) {
	dots := Layout(Options{Tuning: Tuning{250}, Frets: 1000}, []pitch.Class{pitch.Class(250 % 12)}, nil, nil)

	// open, 12 and 24 only; nothing past MaxFrets and no wrapped keys
	require.Len(t, dots, 3)
	for _, d := range dots {
		assert.LessOrEqual(t, d.Fret, MaxFrets)
		assert.Equal(t, 0, d.Fret%12)
		assert.Equal(t, pitch.Class(10), d.Class)
	}
}

func TestRender(t *testing.T) {
	dots := Layout(Options{Frets: 5}, []pitch.Class{0}, nil, highlight.Fills{0: highlight.RootFill})
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Options{Frets: 5}, dots))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[2], "B"))
	assert.Contains(t, lines[2], "[C]")
	assert.Len(t, dots, 3)
	assert.Equal(t, 3, strings.Count(buf.String(), "[C]"))
}
