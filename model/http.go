package model

import "github.com/jsphweid/fretdex/fretboard"

type ChordSelection struct {
	Root    string `json:"root" yaml:"root"`
	Quality string `json:"quality" yaml:"quality"`
}

type CompareRequestBody struct {
	A ChordSelection `json:"a"`
	B ChordSelection `json:"b"`
}

type ChordResult struct {
	Name    string   `json:"name" yaml:"name"`
	Root    string   `json:"root" yaml:"root"`
	Quality string   `json:"quality" yaml:"quality"`
	Tones   []string `json:"tones" yaml:"tones"`
	Classes []int    `json:"classes" yaml:"classes"`
	Labels  []string `json:"labels" yaml:"labels"`
}

type ScaleResult struct {
	Name    string          `json:"name" yaml:"name"`
	Root    string          `json:"root" yaml:"root"`
	Mode    string          `json:"mode" yaml:"mode"`
	Tones   []string        `json:"tones" yaml:"tones"`
	Classes []int           `json:"classes" yaml:"classes"`
	Labels  []string        `json:"labels" yaml:"labels"`
	Dots    []fretboard.Dot `json:"dots,omitempty" yaml:"dots,omitempty"`
}

type DiatonicChordResult struct {
	Degree  int      `json:"degree" yaml:"degree"`
	Numeral string   `json:"numeral" yaml:"numeral"`
	Key     string   `json:"key" yaml:"key"`
	Name    string   `json:"name" yaml:"name"`
	Quality string   `json:"quality" yaml:"quality"`
	Tones   []string `json:"tones" yaml:"tones"`
	Labels  []string `json:"labels" yaml:"labels"`
}

type DiatonicResult struct {
	Scale  ScaleResult           `json:"scale" yaml:"scale"`
	Chords []DiatonicChordResult `json:"chords" yaml:"chords"`
}

type CompareResult struct {
	A     ChordResult       `json:"a" yaml:"a"`
	B     ChordResult       `json:"b" yaml:"b"`
	OnlyA []string          `json:"only_a" yaml:"only_a"`
	OnlyB []string          `json:"only_b" yaml:"only_b"`
	Both  []string          `json:"both" yaml:"both"`
	Fills map[string]string `json:"fills" yaml:"fills"`
}

type SelectionBody struct {
	View   string            `json:"view" yaml:"view"`
	Values map[string]string `json:"values" yaml:"values"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
