package model

type Notes = []uint8

// SoundingChord is the set of keys held down at one instant of a MIDI file.
type SoundingChord struct {
	// microseconds from the start of the file
	Offset int64
	Notes  Notes

	FormedByNoteOn bool
}
