package chord

import (
	"sort"

	"github.com/jsphweid/fretdex/pitch"
)

// Index maps the pitch-class set of every (root, quality) pair to the
// chords spelling it. Sets are keyed with pitch.Set.Key.
type Index struct {
	byKey map[string][]Chord
}

func NewIndex() *Index {
	idx := &Index{byKey: make(map[string][]Chord)}
	for _, q := range Qualities {
		for root := pitch.Class(0); root < pitch.NumClasses; root++ {
			c := Chord{Root: root, Quality: q}
			// Qualities only holds defined values
			tones, _ := c.Tones()
			key := pitch.NewSet(tones...).Key()
			idx.byKey[key] = append(idx.byKey[key], c)
		}
	}
	return idx
}

// Identify returns the chords whose tones are exactly the given notes,
// ignoring order and duplicates. Results are sorted by root, then quality.
func (idx *Index) Identify(notes []pitch.Class) []Chord {
	matches := idx.byKey[pitch.NewSet(notes...).Key()]
	res := append([]Chord(nil), matches...)
	sort.Slice(res, func(i, j int) bool {
		if res[i].Root != res[j].Root {
			return res[i].Root < res[j].Root
		}
		return res[i].Quality < res[j].Quality
	})
	return res
}

func (idx *Index) Len() int {
	return len(idx.byKey)
}
