package model

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/highlight"
	"github.com/jsphweid/fretdex/overlap"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
)

func classes(pcs []pitch.Class) []int {
	res := make([]int, 0, len(pcs))
	for _, pc := range pcs {
		res = append(res, int(pc))
	}
	return res
}

func NewChordResult(c chord.Chord) (ChordResult, error) {
	tones, err := c.Tones()
	if err != nil {
		return ChordResult{}, err
	}
	labels, err := c.Labels()
	if err != nil {
		return ChordResult{}, err
	}
	return ChordResult{
		Name:    c.Name(),
		Root:    pitch.Name(c.Root),
		Quality: c.Quality.String(),
		Tones:   pitch.Names(tones),
		Classes: classes(tones),
		Labels:  labels,
	}, nil
}

func NewScaleResult(s scale.Scale) (ScaleResult, error) {
	tones, err := s.Tones()
	if err != nil {
		return ScaleResult{}, err
	}
	labels, err := s.Labels()
	if err != nil {
		return ScaleResult{}, err
	}
	return ScaleResult{
		Name:    s.Name(),
		Root:    pitch.Name(s.Root),
		Mode:    s.Mode.String(),
		Tones:   pitch.Names(tones),
		Classes: classes(tones),
		Labels:  labels,
	}, nil
}

func NewDiatonicResult(s scale.Scale) (DiatonicResult, error) {
	set, err := scale.Diatonic(s.Root, s.Mode)
	if err != nil {
		return DiatonicResult{}, err
	}
	sr, err := NewScaleResult(s)
	if err != nil {
		return DiatonicResult{}, err
	}
	res := DiatonicResult{Scale: sr}
	for _, dc := range set.Chords {
		res.Chords = append(res.Chords, NewDiatonicChordResult(dc))
	}
	return res, nil
}

// NewDiatonicChordResult reports the degree 1-based.
func NewDiatonicChordResult(dc scale.DiatonicChord) DiatonicChordResult {
	return DiatonicChordResult{
		Degree:  dc.Degree + 1,
		Numeral: dc.Numeral,
		Key:     dc.Key(),
		Name:    dc.Chord.Name(),
		Quality: dc.Chord.Quality.String(),
		Tones:   pitch.Names(dc.Tones),
		Labels:  dc.Labels,
	}
}

func NewCompareResult(a, b chord.Chord) (CompareResult, error) {
	ra, err := NewChordResult(a)
	if err != nil {
		return CompareResult{}, err
	}
	rb, err := NewChordResult(b)
	if err != nil {
		return CompareResult{}, err
	}
	// both chords resolved above
	ta, _ := a.Tones()
	tb, _ := b.Tones()
	p := overlap.Compare(ta, tb)
	return CompareResult{
		A:     ra,
		B:     rb,
		OnlyA: pitch.Names(p.OnlyA),
		OnlyB: pitch.Names(p.OnlyB),
		Both:  pitch.Names(p.Both),
		Fills: highlight.Compare(p).ByName(),
	}, nil
}
