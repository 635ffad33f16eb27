package chord

import (
	"fmt"

	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/pitch"
)

type Quality uint8

const (
	Maj7 Quality = iota
	Min7
	Dom7
	Min7b5
	MinMaj7
	Maj7Sharp5
)

// Qualities lists every defined quality in declaration order.
var Qualities = []Quality{Maj7, Min7, Dom7, Min7b5, MinMaj7, Maj7Sharp5}

type UnknownQualityError struct {
	Quality string
}

func (e *UnknownQualityError) Error() string {
	return fmt.Sprintf("unknown chord quality %q", e.Quality)
}

var (
	maj7       = mustParseAll("1P", "3M", "5P", "7M")
	min7       = mustParseAll("1P", "3m", "5P", "7m")
	dom7       = mustParseAll("1P", "3M", "5P", "7m")
	min7b5     = mustParseAll("1P", "3m", "5b", "7m")
	minMaj7    = mustParseAll("1P", "3m", "5P", "7M")
	maj7Sharp5 = mustParseAll("1P", "3M", "5#", "7M")
)

func mustParseAll(tokens ...string) []interval.Symbol {
	res := make([]interval.Symbol, 0, len(tokens))
	for _, t := range tokens {
		res = append(res, interval.MustParse(t))
	}
	return res
}

// Intervals returns the quality's four interval symbols, root first.
func (q Quality) Intervals() ([]interval.Symbol, error) {
	var symbols []interval.Symbol
	switch q {
	case Maj7:
		symbols = maj7
	case Min7:
		symbols = min7
	case Dom7:
		symbols = dom7
	case Min7b5:
		symbols = min7b5
	case MinMaj7:
		symbols = minMaj7
	case Maj7Sharp5:
		symbols = maj7Sharp5
	default:
		return nil, &UnknownQualityError{Quality: fmt.Sprintf("Quality(%d)", uint8(q))}
	}
	return append([]interval.Symbol(nil), symbols...), nil
}

func (q Quality) String() string {
	switch q {
	case Maj7:
		return "Maj7"
	case Min7:
		return "m7"
	case Dom7:
		return "7"
	case Min7b5:
		return "m7b5"
	case MinMaj7:
		return "mMaj7"
	case Maj7Sharp5:
		return "Maj7#5"
	}
	return fmt.Sprintf("Quality(%d)", uint8(q))
}

func ParseQuality(s string) (Quality, error) {
	switch s {
	case "Maj7", "maj7", "M7":
		return Maj7, nil
	case "m7", "min7":
		return Min7, nil
	case "7", "Dom7", "dom7":
		return Dom7, nil
	case "m7b5", "min7b5":
		return Min7b5, nil
	case "mMaj7", "minMaj7":
		return MinMaj7, nil
	case "Maj7#5", "maj7#5":
		return Maj7Sharp5, nil
	}
	return 0, &UnknownQualityError{Quality: s}
}

// Tones maps the quality's intervals onto root; tones[0] is always root.
func Tones(root pitch.Class, q Quality) ([]pitch.Class, error) {
	symbols, err := q.Intervals()
	if err != nil {
		return nil, err
	}
	tones := make([]pitch.Class, 0, len(symbols))
	for _, s := range symbols {
		tones = append(tones, interval.ApplyToRoot(root, s))
	}
	return tones, nil
}

type Chord struct {
	Root    pitch.Class
	Quality Quality
}

func Parse(root string, quality string) (Chord, error) {
	pc, err := pitch.Resolve(root)
	if err != nil {
		return Chord{}, err
	}
	q, err := ParseQuality(quality)
	if err != nil {
		return Chord{}, err
	}
	return Chord{Root: pc, Quality: q}, nil
}

func (c Chord) Tones() ([]pitch.Class, error) {
	return Tones(c.Root, c.Quality)
}

// Labels are the interval symbols of the chord tones relative to its root.
func (c Chord) Labels() ([]string, error) {
	symbols, err := c.Quality.Intervals()
	if err != nil {
		return nil, err
	}
	return interval.Strings(symbols), nil
}

func (c Chord) Name() string {
	return pitch.Name(c.Root) + c.Quality.String()
}

func (c Chord) String() string {
	return c.Name()
}
