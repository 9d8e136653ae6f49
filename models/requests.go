package models

// NoteBody is the JSON body accepted by the create and edit note endpoints.
// UserID is only meaningful on create, where it must match both the URL user
// id and the caller.
type NoteBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userID,omitempty"`
}

// ListNotesRequest asks for every note of RequestedUserID on behalf of CallerID.
type ListNotesRequest struct {
	RequestedUserID string
	CallerID        string
}

// NoteRequest addresses a single note. URLUserID and CallerID are only
// consulted when strict note ownership is enabled.
type NoteRequest struct {
	NoteID    string
	URLUserID string
	CallerID  string
}

// CreateNoteRequest carries the three user ids that must agree before a note
// is created, plus the note body itself.
type CreateNoteRequest struct {
	URLUserID  string
	CallerID   string
	BodyUserID string
	Title      string
	Content    string
}

// EditNoteRequest overwrites the title and content of NoteID.
type EditNoteRequest struct {
	NoteRequest
	Title   string
	Content string
}

// DeleteNoteRequest removes NoteID on behalf of CallerID.
type DeleteNoteRequest struct {
	URLUserID string
	CallerID  string
	NoteID    string
}
