package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/jsphweid/notegrid/model"
	"github.com/jsphweid/notegrid/track"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func createTestMidi(t *testing.T) []byte {
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(4, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(6, midi.NoteOff(0, 64))
	tr.Add(9, midi.NoteOn(0, 67, 100))
	tr.Add(1, midi.NoteOff(0, 67))
	tr.Close(0)

	s := smf.New()
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writeTestMidi(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "test.mid")
	if err := os.WriteFile(path, createTestMidi(t), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, configPath string, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", configPath, "--log-level", "error"}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func run(t *testing.T, args ...string) string {
	configPath := filepath.Join(t.TempDir(), "notegrid.yaml")
	if err := os.WriteFile(configPath, nil, 0666); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, configPath, args...)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "typo.yaml"), "notes", writeTestMidi(t))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEachFileLogsTotals(t *testing.T) {
	var logs bytes.Buffer
	logger := charmlog.New(&logs)
	ctx := context.WithValue(context.Background(), charmlog.ContextKey, logger)

	var seen []string
	paths := []string{writeTestMidi(t), filepath.Join(t.TempDir(), "missing.mid")}
	err := eachFile(ctx, paths, func(path string, s *smf.SMF, reports []track.Report) error {
		seen = append(seen, path)
		return nil
	})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(paths[:1], seen)
	assert.Contains(logs.String(), "skipping file")
	assert.Contains(logs.String(), "processed files=1 skipped=1")
}

func TestNotesCommand(t *testing.T) {
	path := writeTestMidi(t)
	out := run(t, "notes", path)

	assert := assert.New(t)
	assert.Equal(path+"\ttrack 0\tC5-0-4|E5-4-6|G5-19-1\n", out)
}

func TestQuantizeCommand(t *testing.T) {
	path := writeTestMidi(t)
	out := run(t, "quantize", path)

	assert := assert.New(t)
	assert.Equal(path+"\ttrack 0\tchannel 0\tbase unit 4\tquantized false\tgcd 1\t[4 6 9]\n", out)
}

func TestDatasetCommandSkipsShortTracks(t *testing.T) {
	path := writeTestMidi(t)
	csvPath := filepath.Join(t.TempDir(), "out.csv")
	run(t, "dataset", "-o", csvPath, "--seed", "3", path)

	data, err := os.ReadFile(csvPath)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("input,output\n", string(data))
}

func TestHandleAnalyze(t *testing.T) {
	router := NewRouter(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(createTestMidi(t)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.AnalyzeResponse
	assert.NoError(json.Unmarshal(respBody, &res))
	assert.Len(res.Tracks, 1)
	assert.Equal([]string{"C5-0-4", "E5-4-6", "G5-19-1"}, res.Tracks[0].Notes)
	assert.Equal([]model.Verdict{{
		Channel:     0,
		BaseUnit:    4,
		IsQuantized: false,
		GCD:         1,
		Deltas:      []uint32{4, 6, 9},
	}}, res.Tracks[0].Verdicts)
	assert.Empty(res.Tracks[0].Skipped)
}

func TestHandleAnalyzeRejectsGarbage(t *testing.T) {
	router := NewRouter(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("MThd but not really"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleAnalyzeRejectsOversizedBody(t *testing.T) {
	defer func(limit int64) { maxUploadSize = limit }(maxUploadSize)
	maxUploadSize = 16

	router := NewRouter(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(createTestMidi(t)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Result().StatusCode)
}

func TestHandleAnalyzeRejectsUnknownClock(t *testing.T) {
	router := NewRouter(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/analyze?clock=wall", bytes.NewReader(createTestMidi(t)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandlePitch(t *testing.T) {
	router := NewRouter(context.Background())

	cases := map[string]int{
		"/pitch/D5":    http.StatusOK,
		"/pitch/C%235": http.StatusOK,
		"/pitch/H9":    http.StatusBadRequest,
	}
	for target, status := range cases {
		t.Run(target, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, status, w.Result().StatusCode)
		})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pitch/D5", nil))
	var res model.PitchResponse
	json.NewDecoder(w.Result().Body).Decode(&res)
	assert.Equal(t, model.PitchResponse{Name: "D5", Pitch: 62}, res)
}
