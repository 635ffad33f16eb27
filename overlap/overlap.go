package overlap

import "github.com/jsphweid/fretdex/pitch"

// Partition splits two tone sets into the classes only one side holds and
// the classes both hold.
type Partition struct {
	OnlyA []pitch.Class
	OnlyB []pitch.Class
	Both  []pitch.Class
}

// Compare partitions a and b by pitch-class identity. OnlyA and Both keep
// the order of first occurrence in a, OnlyB the order in b. Repeated
// classes collapse to one entry.
func Compare(a, b []pitch.Class) Partition {
	inA := pitch.NewSet(a...)
	inB := pitch.NewSet(b...)

	var p Partition
	var seen pitch.Set
	for _, pc := range a {
		if seen.Has(pc) {
			continue
		}
		seen = seen.Add(pc)
		if inB.Has(pc) {
			p.Both = append(p.Both, pc)
		} else {
			p.OnlyA = append(p.OnlyA, pc)
		}
	}
	for _, pc := range b {
		if seen.Has(pc) {
			continue
		}
		seen = seen.Add(pc)
		if !inA.Has(pc) {
			p.OnlyB = append(p.OnlyB, pc)
		}
	}
	return p
}
