package constants

import "os"

func GetConfigPath() string {
	path := os.Getenv("NOTEGRID_CONFIG")
	if path != "" {
		return path
	}
	return "notegrid.yaml"
}

func GetAddr() string {
	addr := os.Getenv("NOTEGRID_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// Dataset windows, taken from how the training set was first cut.
const (
	MinTrackNotes   = 108
	WindowsPerTrack = 5
	InputMin        = 8
	InputMax        = 32
	OutputLen       = 100
)

// Separator joins note strings inside one csv cell.
const Separator = "|"

// uploads above this are refused by the server
const MaxUploadSize = 16 * 1024 * 1024
