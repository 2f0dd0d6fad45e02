package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/mailer"
	"github.com/metinatakli/cinema-booking-api/internal/mocks"
	"github.com/metinatakli/cinema-booking-api/internal/validator"
	"github.com/stretchr/testify/require"
)

func newTestApplication(opts ...func(*Application)) *Application {
	sessionManager := scs.New()
	sessionManager.Cookie.Name = sessionCookieName

	app := &Application{
		config:           Config{Env: "test", OrdersPageSize: DefaultOrdersPageSize},
		validator:        validator.NewValidator(),
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:           mailer.NewMockMailer(),
		sessionManager:   sessionManager,
		userRepo:         &mocks.MockUserRepo{},
		genreRepo:        &mocks.MockGenreRepo{},
		actorRepo:        &mocks.MockActorRepo{},
		cinemaHallRepo:   &mocks.MockCinemaHallRepo{},
		movieRepo:        &mocks.MockMovieRepo{},
		movieSessionRepo: &mocks.MockMovieSessionRepo{},
		orderRepo:        &mocks.MockOrderRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// setupTestSession loads a fresh session into the request context and logs
// userId in.
func setupTestSession(t *testing.T, app *Application, r *http.Request, userId int) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)

	return r.WithContext(ctx)
}

// loginCookie stores a session of userId and returns the cookie a browser
// would send with it.
func loginCookie(t *testing.T, app *Application, userId int) *http.Cookie {
	t.Helper()

	ctx, err := app.sessionManager.Load(context.Background(), "")
	require.NoError(t, err)

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)

	token, _, err := app.sessionManager.Commit(ctx)
	require.NoError(t, err)

	return &http.Cookie{Name: app.sessionManager.Cookie.Name, Value: token}
}

// withUser puts userId in the request context the way requireAuthentication
// does, for handlers that are called directly.
func withUser(r *http.Request, userId int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), SessionKeyUserId, userId))
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}

		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
