package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// internalErrorBody is written when a response value cannot be encoded.
var internalErrorBody = []byte(`{"message":"Something went wrong!"}`)

// WriteJSON encodes data as the JSON body of a response with the given
// status code.
//
// The value is marshaled before any header is written, so an encoding
// failure still produces a well-formed 500 response carrying the generic
// error message instead of a partial body.
//
//	utils.WriteJSON(w, models.NewTweetResponse(tweet), http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(internalErrorBody)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteMessage writes the {"message": ...} envelope used by every
// non-resource response of the API.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, struct {
		Message string `json:"message"`
	}{Message: message}, statusCode)
}
