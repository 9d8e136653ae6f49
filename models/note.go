package models

import "time"

// Note is a personal text note. Either Title or Content may be empty, never
// both. OwnerID is fixed at creation.
type Note struct {
	NoteID    string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"userID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// IsEmpty reports whether both title and content are empty.
func (n Note) IsEmpty() bool {
	return n.Title == "" && n.Content == ""
}
