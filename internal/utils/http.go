// Package utils provides general-purpose helpers shared by the server and
// its client: response writers, the resty-based HTTP client and trace id
// generation.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and
// "Content-Type: application/json".
//
// If marshaling fails, nothing but a plain 500 Internal Server Error is sent
// and a wrapped error is returned. Otherwise the number of body bytes written
// and any write error are returned.
//
// Example usage:
//
//	WriteJSON(w, users, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes text with statusCode and "Content-Type: text/plain".
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
