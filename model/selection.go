package model

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
)

// ValidateSelection checks the values a view persists. Keys are matched on
// their last dotted segment so "first.root" is checked like "root"; keys
// it does not know are stored as given.
func ValidateSelection(values map[string]string) error {
	for key, v := range values {
		field := key
		if i := strings.LastIndex(key, "."); i >= 0 {
			field = key[i+1:]
		}
		var err error
		switch strings.ToLower(field) {
		case "root", "scaleroot":
			_, err = pitch.Resolve(v)
		case "quality":
			_, err = chord.ParseQuality(v)
		case "mode", "scaletype":
			_, err = scale.ParseMode(v)
		}
		if err != nil {
			return fmt.Errorf("selection %q: %w", key, err)
		}
	}
	return nil
}
