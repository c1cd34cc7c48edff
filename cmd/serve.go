package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	charmlog "github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/jsphweid/notegrid/constants"
	"github.com/jsphweid/notegrid/midi"
	"github.com/jsphweid/notegrid/model"
	"github.com/jsphweid/notegrid/notes"
	"github.com/jsphweid/notegrid/pitch"
	"github.com/jsphweid/notegrid/track"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	addr          string
	maxUploadSize int64 = constants.MaxUploadSize
)

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to the config, then NOTEGRID_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves note and quantization analysis over http",
	Long: `Serves:
  POST /analyze        body is a standard midi file, ?clock=note|all
  GET  /pitch/{name}   resolves a pitch name like C#5 to its number`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr == "" {
			addr = cfg.Addr
		}
		logger := charmlog.FromContext(cmd.Context())
		logger.Info("listening", "addr", addr)
		return http.ListenAndServe(addr, NewRouter(cmd.Context()))
	},
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		charmlog.FromContext(r.Context()).Error("writing response", "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, model.ErrorResponse{Error: err.Error()})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := charmlog.FromContext(r.Context())

	clock := clockMode()
	if q := r.URL.Query().Get("clock"); q != "" {
		c, err := notes.ParseClock(q)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}
		clock = c
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		logger.Warn("rejected upload", "limit", tooLarge.Limit)
		writeError(w, r, http.StatusRequestEntityTooLarge, err)
		return
	case err != nil:
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s, err := midi.ReadMidi(bytes.NewReader(data))
	if err != nil {
		logger.Warn("rejected upload", "err", err)
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	res := model.AnalyzeResponse{
		Format: midi.TimeFormat(s),
		Tracks: make([]model.TrackResult, 0, len(s.Tracks)),
	}
	for _, report := range track.AnalyzeFile(r.Context(), s, clock) {
		res.Tracks = append(res.Tracks, report.Result())
	}
	writeJSON(w, r, http.StatusOK, res)
}

func HandlePitch(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	n, err := pitch.Parse(name)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.PitchResponse{Name: name, Pitch: n})
}

// NewRouter carries the logger found in ctx into every request.
func NewRouter(ctx context.Context) http.Handler {
	logger := charmlog.FromContext(ctx)

	router := mux.NewRouter().StrictSlash(true)
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("request", "method", r.Method, "path", r.URL.Path)
			rctx := context.WithValue(r.Context(), charmlog.ContextKey, logger)
			next.ServeHTTP(w, r.WithContext(rctx))
		})
	})
	router.HandleFunc("/analyze", HandleAnalyze).Methods(http.MethodPost)
	router.HandleFunc("/pitch/{name}", HandlePitch).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}
