package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type fakeAuthService struct {
	signupFn      func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn       func(ctx context.Context, creds models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	return f.signupFn(ctx, creds)
}

func (f *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return f.loginFn(ctx, creds)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{SignedString: "token-of-" + user.UserID}, nil
	}
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn == nil {
		// "token-of-<id>" authenticates <id>
		const prefix = "token-of-"
		if len(tokenString) > len(prefix) && tokenString[:len(prefix)] == prefix {
			id := tokenString[len(prefix):]
			return models.Token{UserID: id, Email: id + "@x.com"}, nil
		}
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.parseTokenFn(ctx, tokenString)
}

// fakeNoteService implements service.NoteService.
type fakeNoteService struct {
	listNotesFn  func(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error)
	getNoteFn    func(ctx context.Context, req models.NoteRequest) (models.Note, error)
	createNoteFn func(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)
	editNoteFn   func(ctx context.Context, req models.EditNoteRequest) (models.Note, error)
	deleteNoteFn func(ctx context.Context, req models.DeleteNoteRequest) error
}

func (f *fakeNoteService) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	return f.listNotesFn(ctx, req)
}

func (f *fakeNoteService) GetNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	return f.getNoteFn(ctx, req)
}

func (f *fakeNoteService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	return f.createNoteFn(ctx, req)
}

func (f *fakeNoteService) EditNote(ctx context.Context, req models.EditNoteRequest) (models.Note, error) {
	return f.editNoteFn(ctx, req)
}

func (f *fakeNoteService) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	return f.deleteNoteFn(ctx, req)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testServerConfig() config.Server {
	return config.Server{HTTPAddress: ":0", AllowedOrigin: "*"}
}

func newTestHandler(auth service.AuthService, notes service.NoteService) *Handler {
	return NewHandler(&service.Services{AuthService: auth, NoteService: notes}, testServerConfig(), logger.Nop())
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Message
}
