package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/highlight"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/overlap"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/store"
)

type invalidSelectionError struct {
	msg string
}

func (e *invalidSelectionError) Error() string {
	return e.msg
}

func invalidf(format string, args ...any) error {
	return &invalidSelectionError{msg: fmt.Sprintf(format, args...)}
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return invalidf("could not unmarshal request body: %v", err)
	}
	return nil
}

func wantsFretboard(r *http.Request) bool {
	v := r.URL.Query().Get("fretboard")
	return v == "1" || v == "true"
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c, err := chord.Parse(vars["root"], vars["quality"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := model.NewChordResult(c)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) scaleResult(r *http.Request, sc scale.Scale, fills highlight.Fills) (model.ScaleResult, error) {
	res, err := model.NewScaleResult(sc)
	if err != nil {
		return model.ScaleResult{}, err
	}
	if wantsFretboard(r) {
		tones, _ := sc.Tones()
		res.Dots = fretboard.Layout(s.board, tones, res.Labels, fills)
	}
	return res, nil
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sc, err := scale.Parse(vars["root"], vars["mode"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.scaleResult(r, sc, nil)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDiatonic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sc, err := scale.Parse(vars["root"], vars["mode"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := model.NewDiatonicResult(sc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type diatonicChordResponse struct {
	Chord model.DiatonicChordResult `json:"chord"`
	Scale model.ScaleResult         `json:"scale"`
	Fills map[string]string         `json:"fills"`
}

// handleDiatonicChord serves the single-scale view: the scale on the neck
// with one of its chords picked out by degree.
func (s *Server) handleDiatonicChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sc, err := scale.Parse(vars["root"], vars["mode"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	set, err := scale.Diatonic(sc.Root, sc.Mode)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dc, ok := set.Lookup(vars["degree"])
	if !ok {
		s.writeError(w, r, invalidf("unknown scale degree %q", vars["degree"]))
		return
	}

	fills := highlight.Diatonic(dc)
	sr, err := s.scaleResult(r, sc, fills)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, diatonicChordResponse{
		Chord: model.NewDiatonicChordResult(dc),
		Scale: sr,
		Fills: fills.ByName(),
	})
}

type compareResponse struct {
	model.CompareResult
	Scale *model.ScaleResult `json:"scale,omitempty"`
}

// handleCompare partitions two chords. With ?scale_root=&mode= it also
// lays the scale out with the comparison fills, as the two-bar view does.
// mode defaults to ionian. Chord tones outside the scale are not drawn.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var input model.CompareRequestBody
	if err := decodeBody(r, &input); err != nil {
		s.writeError(w, r, err)
		return
	}
	a, err := chord.Parse(input.A.Root, input.A.Quality)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := chord.Parse(input.B.Root, input.B.Quality)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := model.NewCompareResult(a, b)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := compareResponse{CompareResult: res}
	if root := r.URL.Query().Get("scale_root"); root != "" {
		mode := r.URL.Query().Get("mode")
		if mode == "" {
			mode = scale.Ionian.String()
		}
		sc, err := scale.Parse(root, mode)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		ta, _ := a.Tones()
		tb, _ := b.Tones()
		sr, err := s.scaleResult(r, sc, highlight.Compare(overlap.Compare(ta, tb)))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		out.Scale = &sr
	}
	writeJSON(w, http.StatusOK, out)
}

type identifyRequest struct {
	Notes []string `json:"notes"`
}

type identifyResponse struct {
	Chords []string `json:"chords"`
}

func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	var input identifyRequest
	if err := decodeBody(r, &input); err != nil {
		s.writeError(w, r, err)
		return
	}
	notes, err := pitch.ResolveAll(input.Notes)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res := identifyResponse{Chords: make([]string, 0)}
	for _, c := range s.index.Identify(notes) {
		res.Chords = append(res.Chords, c.Name())
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	view := mux.Vars(r)["view"]
	sel, err := s.store.Load(r.Context(), view)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SelectionBody{View: sel.View, Values: sel.Values})
}

func (s *Server) handlePutSelection(w http.ResponseWriter, r *http.Request) {
	view := mux.Vars(r)["view"]
	var input model.SelectionBody
	if err := decodeBody(r, &input); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := model.ValidateSelection(input.Values); err != nil {
		s.writeError(w, r, err)
		return
	}
	sel := store.Selection{View: view, Values: input.Values}
	if err := s.store.Save(r.Context(), sel); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SelectionBody{View: view, Values: input.Values})
}
