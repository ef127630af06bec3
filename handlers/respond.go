// handlers/respond.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError logs and writes a JSON error body.
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}
