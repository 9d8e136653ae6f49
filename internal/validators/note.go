package validators

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// FieldNoteBody targets the title/content pair of a note: at least one of
// them must be non-empty.
const FieldNoteBody = "note_body"

// NoteValidator implements [Validator] for note payloads.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator
// and returns it as the Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types (value and pointer):
//   - models.Note
//   - models.NoteBody
//   - models.CreateNoteRequest
//   - models.EditNoteRequest
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateBody(ctx, value.Title, value.Content, fields...)
	case *models.Note:
		return v.validateBody(ctx, value.Title, value.Content, fields...)
	case models.NoteBody:
		return v.validateBody(ctx, value.Title, value.Content, fields...)
	case *models.NoteBody:
		return v.validateBody(ctx, value.Title, value.Content, fields...)
	case models.CreateNoteRequest:
		return v.validateBody(ctx, value.Title, value.Content, fields...)
	case *models.CreateNoteRequest:
		return v.validateBody(ctx, value.Title, value.Content, fields...)
	case models.EditNoteRequest:
		return v.validateBody(ctx, value.Title, value.Content, fields...)
	case *models.EditNoteRequest:
		return v.validateBody(ctx, value.Title, value.Content, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateBody(_ context.Context, title, content string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteBody}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteBody:
			if (models.Note{Title: title, Content: content}).IsEmpty() {
				return ErrEmptyNote
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
