package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()

	noteService := NewNoteService(storages.NoteRepository, storages.UserRepository, storages.Transactor, ids, cfg.App, logger)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, ids, cfg.App, logger),
		NoteService: NewNoteValidationService().Wrap(noteService),
	}
}
