package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteValidationService rejects empty note bodies before they reach the
// wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	return v.inner.ListNotes(ctx, req)
}

func (v *NoteValidationService) GetNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	return v.inner.GetNote(ctx, req)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldNoteBody); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidNoteInput, err)
	}

	return v.inner.CreateNote(ctx, req)
}

func (v *NoteValidationService) EditNote(ctx context.Context, req models.EditNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldNoteBody); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidNoteInput, err)
	}

	return v.inner.EditNote(ctx, req)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	return v.inner.DeleteNote(ctx, req)
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}
