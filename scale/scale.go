package scale

import (
	"fmt"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/pitch"
)

type Mode uint8

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

const Size = 7

var Modes = []Mode{Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian}

var ionian = [Size]int{0, 2, 4, 5, 7, 9, 11}

// classical qualities of the seventh chords on each major-scale degree
var ionianQualities = [Size]chord.Quality{chord.Maj7, chord.Min7, chord.Min7, chord.Maj7, chord.Dom7, chord.Min7, chord.Min7b5}

var numerals = [Size]string{"I", "II", "III", "IV", "V", "VI", "VII"}

type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown scale mode %q", e.Mode)
}

func (m Mode) String() string {
	switch m {
	case Ionian:
		return "ionian"
	case Dorian:
		return "dorian"
	case Phrygian:
		return "phrygian"
	case Lydian:
		return "lydian"
	case Mixolydian:
		return "mixolydian"
	case Aeolian:
		return "aeolian"
	case Locrian:
		return "locrian"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "ionian", "major":
		return Ionian, nil
	case "dorian":
		return Dorian, nil
	case "phrygian":
		return Phrygian, nil
	case "lydian":
		return Lydian, nil
	case "mixolydian":
		return Mixolydian, nil
	case "aeolian", "minor":
		return Aeolian, nil
	case "locrian":
		return Locrian, nil
	}
	return 0, &UnknownModeError{Mode: s}
}

func (m Mode) index() (int, error) {
	switch m {
	case Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian:
		return int(m), nil
	}
	return 0, &UnknownModeError{Mode: m.String()}
}

// Offsets returns the semitone offsets of the mode's seven degrees: the
// ionian pattern rotated to start at the mode's index.
func (m Mode) Offsets() ([]int, error) {
	start, err := m.index()
	if err != nil {
		return nil, err
	}
	res := make([]int, Size)
	for i := range res {
		res[i] = (ionian[(start+i)%Size] - ionian[start] + 12) % 12
	}
	return res, nil
}

func Generate(root pitch.Class, m Mode) ([]pitch.Class, error) {
	offsets, err := m.Offsets()
	if err != nil {
		return nil, err
	}
	tones := make([]pitch.Class, 0, Size)
	for _, o := range offsets {
		tones = append(tones, pitch.Transpose(root, o))
	}
	return tones, nil
}

// Labels names each scale tone by its degree relative to the root, e.g.
// dorian gives 1P 2M 3m 4P 5P 6M 7m.
func Labels(m Mode) ([]interval.Symbol, error) {
	offsets, err := m.Offsets()
	if err != nil {
		return nil, err
	}
	res := make([]interval.Symbol, 0, Size)
	for i, o := range offsets {
		s, err := interval.ForDegree(i+1, o)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

type Scale struct {
	Root pitch.Class
	Mode Mode
}

func Parse(root string, mode string) (Scale, error) {
	pc, err := pitch.Resolve(root)
	if err != nil {
		return Scale{}, err
	}
	m, err := ParseMode(mode)
	if err != nil {
		return Scale{}, err
	}
	return Scale{Root: pc, Mode: m}, nil
}

func (s Scale) Tones() ([]pitch.Class, error) {
	return Generate(s.Root, s.Mode)
}

func (s Scale) Labels() ([]string, error) {
	symbols, err := Labels(s.Mode)
	if err != nil {
		return nil, err
	}
	return interval.Strings(symbols), nil
}

func (s Scale) Name() string {
	return pitch.Name(s.Root) + " " + s.Mode.String()
}
