package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/Masterminds/squirrel"
)

const (
	usersTable    = "users"
	notesTable    = "notes"
	noteRefsTable = "user_note_refs"
)

var (
	userColumns = []string{"user_id", "email", "password_hash", "created_at"}
	noteColumns = []string{"note_id", "owner_id", "title", "content", "created_at", "updated_at"}
)

func toSQL(b squirrel.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUserQuery(sb squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(sb.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.CreatedAt))
}

func buildSelectUserQuery(sb squirrel.StatementBuilderType, where squirrel.Eq) (string, []any, error) {
	return toSQL(sb.Select(userColumns...).
		From(usersTable).
		Where(where))
}

func buildSelectNoteRefsQuery(sb squirrel.StatementBuilderType, userID string) (string, []any, error) {
	return toSQL(sb.Select("note_id").
		From(noteRefsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("ref_id ASC"))
}

func buildInsertNoteRefQuery(sb squirrel.StatementBuilderType, userID, noteID string) (string, []any, error) {
	return toSQL(sb.Insert(noteRefsTable).
		Columns("user_id", "note_id").
		Values(userID, noteID))
}

func buildDeleteNoteRefQuery(sb squirrel.StatementBuilderType, userID, noteID string) (string, []any, error) {
	return toSQL(sb.Delete(noteRefsTable).
		Where(squirrel.Eq{"user_id": userID, "note_id": noteID}))
}

func buildInsertNoteQuery(sb squirrel.StatementBuilderType, note models.Note) (string, []any, error) {
	return toSQL(sb.Insert(notesTable).
		Columns(noteColumns...).
		Values(note.NoteID, note.OwnerID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt))
}

func buildSelectNoteByIDQuery(sb squirrel.StatementBuilderType, noteID string) (string, []any, error) {
	return toSQL(sb.Select(noteColumns...).
		From(notesTable).
		Where(squirrel.Eq{"note_id": noteID}))
}

func buildSelectNotesByOwnerQuery(sb squirrel.StatementBuilderType, ownerID string) (string, []any, error) {
	return toSQL(sb.Select(noteColumns...).
		From(notesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "note_id DESC"))
}

func buildUpdateNoteQuery(sb squirrel.StatementBuilderType, note models.Note, updatedAt time.Time) (string, []any, error) {
	return toSQL(sb.Update(notesTable).
		Set("title", note.Title).
		Set("content", note.Content).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"note_id": note.NoteID}))
}

func buildDeleteNoteQuery(sb squirrel.StatementBuilderType, noteID string) (string, []any, error) {
	return toSQL(sb.Delete(notesTable).
		Where(squirrel.Eq{"note_id": noteID}))
}
