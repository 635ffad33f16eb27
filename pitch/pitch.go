package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

// Class is a position on the chromatic circle, 0 (C) through 11 (B).
type Class uint8

const NumClasses = 12

// one spelling per class, flats preferred
var names = [NumClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

type UnknownNoteNameError struct {
	Name string
}

func (e *UnknownNoteNameError) Error() string {
	return fmt.Sprintf("unknown note name %q", e.Name)
}

// Resolve looks a note name up in the canonical table. Enharmonic
// spellings outside the table (C#, Fb, ...) are rejected.
func Resolve(name string) (Class, error) {
	for i, n := range names {
		if n == name {
			return Class(i), nil
		}
	}
	return 0, &UnknownNoteNameError{Name: name}
}

func Name(pc Class) string {
	return names[pc%NumClasses]
}

func (pc Class) String() string {
	return Name(pc)
}

// Transpose moves pc by semitones, wrapping negative results into [0,11].
func Transpose(pc Class, semitones int) Class {
	return Class(mod(int(pc)+semitones, NumClasses))
}

func FromMIDI(key uint8) Class {
	return Class(key % NumClasses)
}

func Names(pcs []Class) []string {
	res := make([]string, 0, len(pcs))
	for _, pc := range pcs {
		res = append(res, Name(pc))
	}
	return res
}

func ResolveAll(names []string) ([]Class, error) {
	res := make([]Class, 0, len(names))
	for _, n := range names {
		pc, err := Resolve(n)
		if err != nil {
			return nil, err
		}
		res = append(res, pc)
	}
	return res, nil
}

// Set is a membership set over the 12 pitch classes, one bit per class.
type Set uint16

func NewSet(pcs ...Class) Set {
	var s Set
	for _, pc := range pcs {
		s = s.Add(pc)
	}
	return s
}

func (s Set) Add(pc Class) Set {
	return s | 1<<(pc%NumClasses)
}

func (s Set) Has(pc Class) bool {
	return s&(1<<(pc%NumClasses)) != 0
}

func (s Set) Len() int {
	var n int
	for pc := Class(0); pc < NumClasses; pc++ {
		if s.Has(pc) {
			n++
		}
	}
	return n
}

// Classes returns the members in ascending order.
func (s Set) Classes() []Class {
	var res []Class
	for pc := Class(0); pc < NumClasses; pc++ {
		if s.Has(pc) {
			res = append(res, pc)
		}
	}
	return res
}

// Key renders the set as its ascending classes joined by "-", e.g. "2-5-7-11".
func (s Set) Key() string {
	var parts []string
	for _, pc := range s.Classes() {
		parts = append(parts, strconv.Itoa(int(pc)))
	}
	return strings.Join(parts, "-")
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
