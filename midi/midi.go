package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if p := recover(); p != nil {
			s, e = nil, fmt.Errorf("parsing midi file: %v", p)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

type noteEvent struct {
	offset    int64
	isNoteOff bool
	key       uint8
}

// Chords sweeps every track's note-on/off events in time order and returns
// the keys held after each instant that changes them, dropping silences.
func Chords(s *smf.SMF) []model.SoundingChord {
	var events []noteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// note on with zero velocity is a note off
				events = append(events, noteEvent{offset: absTime, isNoteOff: velocity == 0, key: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{offset: absTime, isNoteOff: true, key: key})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	var chords []model.SoundingChord
	pressed := make(map[uint8]bool)
	for i, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}
		// only emit once all events at this instant are applied
		if i+1 < len(events) && events[i+1].offset == evt.offset {
			continue
		}
		if len(pressed) == 0 {
			continue
		}
		chords = append(chords, model.SoundingChord{
			Offset:         evt.offset,
			Notes:          sortedKeys(pressed),
			FormedByNoteOn: !evt.isNoteOff,
		})
	}
	return chords
}

func sortedKeys(m map[uint8]bool) model.Notes {
	res := make(model.Notes, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

// PitchClasses reduces MIDI keys to their pitch classes, keeping the first
// occurrence of each.
func PitchClasses(notes model.Notes) []pitch.Class {
	var seen pitch.Set
	var res []pitch.Class
	for _, n := range notes {
		pc := pitch.FromMIDI(n)
		if !seen.Has(pc) {
			seen = seen.Add(pc)
			res = append(res, pc)
		}
	}
	return res
}
