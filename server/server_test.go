package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/fretdex/highlight"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return New(Options{
		Store:  store.NewMemory(),
		Frets:  12,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[A any](t *testing.T, w *httptest.ResponseRecorder) A {
	t.Helper()
	var v A
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestChordEndpoint(t *testing.T) {
	router := newTestServer().Router()
	w := do(t, router, http.MethodGet, "/chords/G/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	res := decode[model.ChordResult](t, w)
	assert.Equal(t, "G7", res.Name)
	assert.Equal(t, []string{"G", "B", "D", "F"}, res.Tones)
	assert.Equal(t, []int{7, 11, 2, 5}, res.Classes)
	assert.Equal(t, []string{"1P", "3M", "5P", "7m"}, res.Labels)
}

func TestInvalidSelectionsAreBadRequests(t *testing.T) {
	router := newTestServer().Router()
	for _, target := range []string{
		"/chords/H/7",
		"/chords/C/bogus",
		"/scales/C/bebop",
		"/scales/C/ionian/diatonic/IX",
	} {
		t.Run(target, func(t *testing.T) {
			w := do(t, router, http.MethodGet, target, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode[model.ErrorResponse](t, w).Error)
		})
	}
}

func TestScaleEndpoint(t *testing.T) {
	router := newTestServer().Router()

	w := do(t, router, http.MethodGet, "/scales/C/ionian", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.ScaleResult](t, w)
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, res.Tones)
	assert.Empty(t, res.Dots)

	w = do(t, router, http.MethodGet, "/scales/A/minor?fretboard=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[model.ScaleResult](t, w)
	assert.Equal(t, "aeolian", res.Mode)
	assert.NotEmpty(t, res.Dots)
}

func TestDiatonicEndpoints(t *testing.T) {
	router := newTestServer().Router()

	w := do(t, router, http.MethodGet, "/scales/C/ionian/diatonic", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.DiatonicResult](t, w)
	require.Len(t, res.Chords, 7)
	assert.Equal(t, "Dm7", res.Chords[1].Name)
	assert.Equal(t, "m7", res.Chords[1].Quality)

	w = do(t, router, http.MethodGet, "/scales/C/ionian/diatonic/V_7?fretboard=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	one := decode[diatonicChordResponse](t, w)
	assert.Equal(t, "G7", one.Chord.Name)
	assert.Equal(t, highlight.RootFill, one.Fills["G"])
	for _, d := range one.Scale.Dots {
		if d.Note == "C" {
			assert.Empty(t, d.Fill)
		}
		if d.Note == "F" {
			assert.Equal(t, highlight.ToneFill, d.Fill)
		}
	}
}

func TestCompareEndpoint(t *testing.T) {
	router := newTestServer().Router()
	body := model.CompareRequestBody{
		A: model.ChordSelection{Root: "G", Quality: "7"},
		B: model.ChordSelection{Root: "C", Quality: "Maj7"},
	}

	w := do(t, router, http.MethodPost, "/compare?scale_root=C&mode=ionian&fretboard=1", body)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[compareResponse](t, w)
	assert.Equal(t, []string{"G", "B"}, res.Both)
	assert.Equal(t, []string{"D", "F"}, res.OnlyA)
	assert.Equal(t, []string{"C", "E"}, res.OnlyB)
	assert.Equal(t, highlight.SharedFill, res.Fills["B"])
	require.NotNil(t, res.Scale)
	assert.NotEmpty(t, res.Scale.Dots)

	body.B.Quality = "bogus"
	w = do(t, router, http.MethodPost, "/compare", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/compare", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompareScaleDefaultsToIonian(t *testing.T) {
	router := newTestServer().Router()
	body := model.CompareRequestBody{
		A: model.ChordSelection{Root: "Ab", Quality: "7"},
		B: model.ChordSelection{Root: "C", Quality: "Maj7"},
	}

	w := do(t, router, http.MethodPost, "/compare?scale_root=C&fretboard=1", body)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[compareResponse](t, w)
	require.NotNil(t, res.Scale)
	assert.Equal(t, "ionian", res.Scale.Mode)
	for _, d := range res.Scale.Dots {
		assert.NotEqual(t, "Ab", d.Note)
		if d.Note == "C" {
			assert.Equal(t, highlight.SharedFill, d.Fill)
		}
	}
}

func TestIdentifyEndpoint(t *testing.T) {
	router := newTestServer().Router()

	w := do(t, router, http.MethodPost, "/identify", map[string][]string{"notes": {"F", "B", "D", "G"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, identifyResponse{Chords: []string{"G7"}}, decode[identifyResponse](t, w))

	w = do(t, router, http.MethodPost, "/identify", map[string][]string{"notes": {"C#"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelections(t *testing.T) {
	router := newTestServer().Router()

	w := do(t, router, http.MethodGet, "/selections/majScale", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := model.SelectionBody{Values: map[string]string{"root": "Eb", "chord": "V_7"}}
	w = do(t, router, http.MethodPut, "/selections/majScale", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/selections/majScale", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[model.SelectionBody](t, w)
	assert.Equal(t, "majScale", got.View)
	assert.Equal(t, body.Values, got.Values)

	bad := model.SelectionBody{Values: map[string]string{"first.root": "H"}}
	w = do(t, router, http.MethodPut, "/selections/scaleAndChords", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORS(t *testing.T) {
	h := Handler(newTestServer(), []string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
