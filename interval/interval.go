package interval

import (
	"fmt"

	"github.com/jsphweid/fretdex/pitch"
)

type Alteration uint8

const (
	None Alteration = iota
	Flat
	Sharp
	Minor
	Major
	Perfect
)

// Symbol is a scale degree (1-7) plus an alteration, e.g. 3M or 5b.
type Symbol struct {
	Degree     int
	Alteration Alteration
}

type InvalidIntervalSymbolError struct {
	Token  string
	Reason string
}

func (e *InvalidIntervalSymbolError) Error() string {
	return fmt.Sprintf("invalid interval symbol %q: %s", e.Token, e.Reason)
}

// semitones above the root for each degree of the major scale
var diatonic = [8]int{1: 0, 2: 2, 3: 4, 4: 5, 5: 7, 6: 9, 7: 11}

func alterationOf(c byte) (Alteration, bool) {
	switch c {
	case 'b':
		return Flat, true
	case '#':
		return Sharp, true
	case 'm':
		return Minor, true
	case 'M':
		return Major, true
	case 'P':
		return Perfect, true
	}
	return None, false
}

func (a Alteration) char() string {
	switch a {
	case Flat:
		return "b"
	case Sharp:
		return "#"
	case Minor:
		return "m"
	case Major:
		return "M"
	case Perfect:
		return "P"
	}
	return ""
}

func (a Alteration) delta() int {
	switch a {
	case Flat, Minor:
		return -1
	case Sharp:
		return 1
	}
	return 0
}

// Parse reads a token of the form <degree>[alteration] ("3M", "7m", "5b")
// or the leading accidental spelling ("b7", "#4").
func Parse(token string) (Symbol, error) {
	var digit byte
	alt := None

	switch len(token) {
	case 1:
		digit = token[0]
	case 2:
		if a, ok := alterationOf(token[1]); ok {
			digit, alt = token[0], a
		} else if a, ok := alterationOf(token[0]); ok && (a == Flat || a == Sharp) {
			digit, alt = token[1], a
		} else {
			return Symbol{}, &InvalidIntervalSymbolError{Token: token, Reason: "unknown alteration"}
		}
	default:
		return Symbol{}, &InvalidIntervalSymbolError{Token: token, Reason: "expected a degree and at most one alteration"}
	}

	if digit < '1' || digit > '7' {
		return Symbol{}, &InvalidIntervalSymbolError{Token: token, Reason: "degree must be 1-7"}
	}
	s := Symbol{Degree: int(digit - '0'), Alteration: alt}
	if err := s.validate(); err != nil {
		return Symbol{}, &InvalidIntervalSymbolError{Token: token, Reason: err.Error()}
	}
	return s, nil
}

func MustParse(token string) Symbol {
	s, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Symbol) validate() error {
	if s.Degree < 1 || s.Degree > 7 {
		return fmt.Errorf("degree %d out of range", s.Degree)
	}
	if s.Alteration == Minor && s.Degree != 3 && s.Degree != 7 {
		return fmt.Errorf("minor alteration only applies to degrees 3 and 7")
	}
	return nil
}

// Semitones is the offset above the root. Degrees outside 1-7 are reported
// as 0; Parse never produces them.
func (s Symbol) Semitones() int {
	if s.Degree < 1 || s.Degree > 7 {
		return 0
	}
	return diatonic[s.Degree] + s.Alteration.delta()
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d%s", s.Degree, s.Alteration.char())
}

func ApplyToRoot(root pitch.Class, s Symbol) pitch.Class {
	return pitch.Transpose(root, s.Semitones())
}

// ForDegree names the tone sitting semitones above a root as the given
// scale degree: 0 deviation is perfect (1, 4, 5) or major, one below is
// minor (3, 7) or flat, one above is sharp.
func ForDegree(degree int, semitones int) (Symbol, error) {
	if degree < 1 || degree > 7 {
		return Symbol{}, fmt.Errorf("degree %d out of range", degree)
	}
	d := semitones - diatonic[degree]
	// wrap so a 7th sitting on the root side still reads as -1
	if d > 6 {
		d -= 12
	} else if d < -6 {
		d += 12
	}

	s := Symbol{Degree: degree}
	switch d {
	case 0:
		if degree == 1 || degree == 4 || degree == 5 {
			s.Alteration = Perfect
		} else {
			s.Alteration = Major
		}
	case -1:
		if degree == 3 || degree == 7 {
			s.Alteration = Minor
		} else {
			s.Alteration = Flat
		}
	case 1:
		s.Alteration = Sharp
	default:
		return Symbol{}, fmt.Errorf("%d semitones is not an alteration of degree %d", semitones, degree)
	}
	return s, nil
}

func Strings(symbols []Symbol) []string {
	res := make([]string, 0, len(symbols))
	for _, s := range symbols {
		res = append(res, s.String())
	}
	return res
}
