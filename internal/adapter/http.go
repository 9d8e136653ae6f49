package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpNotesAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNotesAPI constructs the resty implementation of [NotesAPI]. The
// base URL is taken from cfg.HTTPAddress; "http://" is assumed when no
// scheme is given.
func NewHTTPNotesAPI(cfg config.Adapter, logger *logger.Logger) (NotesAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClientWithTimeout(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpNotesAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNotesAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpNotesAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup posts creds to POST /api/users/signup and keeps the returned token.
func (h *httpNotesAPI) Signup(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/users/signup", creds)
}

// Login posts creds to POST /api/users/login and keeps the returned token.
func (h *httpNotesAPI) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/users/login", creds)
}

func (h *httpNotesAPI) authenticate(ctx context.Context, path string, creds models.Credentials) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("user_id", result.UserID).Str("path", path).Msg("authenticated")
	return result, nil
}

// ListNotes implements GET /api/users/{uid}.
func (h *httpNotesAPI) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	var result models.NotesResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("uid", userID).
		SetResult(&result).
		Get("/api/users/{uid}")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Notes, nil
}

// CreateNote implements POST /api/users/{uid}/notes. body.UserID defaults to
// userID.
func (h *httpNotesAPI) CreateNote(ctx context.Context, userID string, body models.NoteBody) (models.Note, error) {
	if body.UserID == "" {
		body.UserID = userID
	}

	var result models.NoteResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("uid", userID).
		SetBody(body).
		SetResult(&result).
		Post("/api/users/{uid}/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return result.Note, nil
}

// GetNote implements GET /api/users/{uid}/notes/{nid}.
func (h *httpNotesAPI) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	var result models.NoteResponse

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"uid": userID, "nid": noteID}).
		SetResult(&result).
		Get("/api/users/{uid}/notes/{nid}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return result.Note, nil
}

// EditNote implements PATCH /api/users/{uid}/notes/{nid}.
func (h *httpNotesAPI) EditNote(ctx context.Context, userID, noteID string, body models.NoteBody) (models.Note, error) {
	var result models.NoteResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"uid": userID, "nid": noteID}).
		SetBody(models.NoteBody{Title: body.Title, Content: body.Content}).
		SetResult(&result).
		Patch("/api/users/{uid}/notes/{nid}")
	if err != nil {
		return models.Note{}, fmt.Errorf("edit note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return result.Note, nil
}

// DeleteNote implements DELETE /api/users/{uid}/notes/{nid}.
func (h *httpNotesAPI) DeleteNote(ctx context.Context, userID, noteID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"uid": userID, "nid": noteID}).
		Delete("/api/users/{uid}/notes/{nid}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
