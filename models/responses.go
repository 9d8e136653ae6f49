package models

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// NotesResponse wraps the list of a user's notes.
type NotesResponse struct {
	Notes []Note `json:"notes"`
}

// NoteResponse wraps a single note.
type NoteResponse struct {
	Note Note `json:"note"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}
