package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeMessage sends the {"message": ...} error body every non-2xx response
// uses. Messages stay generic; internals never reach the client.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, map[string]string{"message": msg}, status)
}
