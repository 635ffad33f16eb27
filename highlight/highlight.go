package highlight

import (
	"github.com/jsphweid/fretdex/overlap"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
)

const (
	FirstFill  = "#fca5a5" // soft red
	SecondFill = "#93c5fd" // soft blue
	SharedFill = "#c084fc" // soft purple
	RootFill   = "orange"
	ToneFill   = "skyblue"
)

// Fills maps a pitch class to the colour its dots are painted with.
// Classes absent from the map keep the renderer's default fill.
type Fills map[pitch.Class]string

func Compare(p overlap.Partition) Fills {
	f := make(Fills)
	for _, pc := range p.OnlyA {
		f[pc] = FirstFill
	}
	for _, pc := range p.OnlyB {
		f[pc] = SecondFill
	}
	for _, pc := range p.Both {
		f[pc] = SharedFill
	}
	return f
}

func Diatonic(dc scale.DiatonicChord) Fills {
	f := make(Fills)
	for i, pc := range dc.Tones {
		if i == 0 {
			f[pc] = RootFill
		} else {
			f[pc] = ToneFill
		}
	}
	return f
}

// ByName re-keys the fills by canonical note name, the form the browser
// renderer filters on.
func (f Fills) ByName() map[string]string {
	res := make(map[string]string, len(f))
	for pc, fill := range f {
		res[pitch.Name(pc)] = fill
	}
	return res
}
