package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is sent when data cannot be encoded.
const marshalFailureBody = `{"message":"Something went wrong, please try again."}`

// WriteJSON writes data as an application/json response with statusCode and
// returns the number of body bytes written.
//
// Statuses that forbid a body (204, 304) get the header only, data is
// ignored. When data cannot be marshalled a 500 with a generic
// {"message": ...} body is written instead and the marshal error returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	if statusCode == http.StatusNoContent || statusCode == http.StatusNotModified {
		w.WriteHeader(statusCode)
		return 0, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
