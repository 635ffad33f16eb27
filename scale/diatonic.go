package scale

import (
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/pitch"
)

// DiatonicChord is the seventh chord stacked on one degree of a scale.
type DiatonicChord struct {
	Degree  int // 0-based
	Numeral string
	Chord   chord.Chord
	Tones   []pitch.Class
	// Labels name the chord tones by their degree in the parent scale
	Labels []string
}

// ChordSet holds one chord per scale degree, indexed by degree.
type ChordSet struct {
	Scale  Scale
	Chords [Size]DiatonicChord
}

// Diatonic builds the seventh chord on every degree by stacking thirds
// inside the scale, so chord tones never leave it.
//
// Qualities follow the major-scale pattern (Maj7 m7 m7 Maj7 7 m7 m7b5)
// rotated to the mode, so each quality matches the tones stacked on its
// degree. Only ionian gets that pattern unrotated: the first chord of D
// dorian is Dm7, not DMaj7.
func Diatonic(root pitch.Class, m Mode) (ChordSet, error) {
	start, err := m.index()
	if err != nil {
		return ChordSet{}, err
	}
	tones, err := Generate(root, m)
	if err != nil {
		return ChordSet{}, err
	}
	labels, err := Labels(m)
	if err != nil {
		return ChordSet{}, err
	}

	set := ChordSet{Scale: Scale{Root: root, Mode: m}}
	for d := 0; d < Size; d++ {
		q := ionianQualities[(start+d)%Size]
		dc := DiatonicChord{
			Degree:  d,
			Numeral: numeral(d, q),
			Chord:   chord.Chord{Root: tones[d], Quality: q},
		}
		for _, step := range []int{0, 2, 4, 6} {
			i := (d + step) % Size
			dc.Tones = append(dc.Tones, tones[i])
			dc.Labels = append(dc.Labels, labels[i].String())
		}
		set.Chords[d] = dc
	}
	return set, nil
}

func numeral(degree int, q chord.Quality) string {
	n := numerals[degree]
	if q == chord.Min7 || q == chord.Min7b5 {
		n = strings.ToLower(n)
	}
	return n
}

// Key renders a chord the way the single-scale view stores it, e.g. "II_m7".
func (dc DiatonicChord) Key() string {
	return numerals[dc.Degree] + "_" + dc.Chord.Quality.String()
}

// Lookup finds a chord by its 1-based degree or its Key ("V_7").
func (cs ChordSet) Lookup(ref string) (DiatonicChord, bool) {
	for _, dc := range cs.Chords {
		if dc.Key() == ref || numerals[dc.Degree] == ref || strings.EqualFold(dc.Numeral, ref) {
			return dc, true
		}
	}
	if len(ref) == 1 && ref[0] >= '1' && ref[0] <= '7' {
		return cs.Chords[ref[0]-'1'], true
	}
	return DiatonicChord{}, false
}
