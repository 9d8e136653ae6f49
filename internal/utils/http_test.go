package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_NoteResponse(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, models.NoteResponse{Note: models.Note{NoteID: "n1", Title: "t", OwnerID: "u1"}}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, w.Body.Len(), n)
	assert.Contains(t, w.Body.String(), `"id":"n1"`)
	assert.Contains(t, w.Body.String(), `"userID":"u1"`)
}

func TestWriteJSON_ErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.ErrorResponse{Message: "Could not find this route"}, http.StatusNotFound)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Could not find this route"}`, w.Body.String())
}

func TestWriteJSON_EmptyNotesList(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.NotesResponse{Notes: []models.Note{}}, http.StatusOK)
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":[]}`, w.Body.String())
}

func TestWriteJSON_NoContentHasNoBody(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, models.ErrorResponse{Message: "ignored"}, http.StatusNoContent)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, n)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get("Content-Type"))
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]any{"bad": make(chan int)}, http.StatusOK)
	require.Error(t, err)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, marshalFailureBody, w.Body.String())
}
