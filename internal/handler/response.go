// Package handler implements the HTTP handlers for the REST API. Every
// response, success or error, uses the same envelope with the HTTP status
// mirrored in the body.
package handler

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body: the HTTP status code repeated as
// statuscode, the payload (null on errors), and a human-readable message.
type Envelope struct {
	StatusCode int    `json:"statuscode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

func respond(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}

// decodeJSON reads a JSON body into dst with a 1MB cap, writing the error
// response itself when decoding fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err.Error() == "http: request body too large" {
			respond(w, http.StatusRequestEntityTooLarge, nil, "Request body too large")
			return false
		}
		respond(w, http.StatusBadRequest, nil, "Invalid request body")
		return false
	}

	return true
}
