package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON writes v as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handlers: failed to encode JSON response: %v", err)
	}
}
