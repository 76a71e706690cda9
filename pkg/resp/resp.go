package resp

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSONResponse - пишет статус и data в формате JSON
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError - ответ с телом {"error": msg}
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, errorResponse{Error: msg})
}
