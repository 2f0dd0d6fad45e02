package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
	"github.com/metinatakli/cinema-booking-api/internal/mocks"
	"github.com/metinatakli/cinema-booking-api/internal/validator"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testShowTime = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	testHall     = domain.CinemaHall{ID: 1, Name: "Red", Rows: 10, SeatsInRow: 12}
)

func TestGetMovieSessions(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		params         api.GetMovieSessionsParams
		wantFilters    *domain.MovieSessionFilters
		repoErr        error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:        "no filters",
			params:      api.GetMovieSessionsParams{},
			wantFilters: &domain.MovieSessionFilters{},
			wantStatus:  http.StatusOK,
		},
		{
			name: "date and movie filters",
			params: api.GetMovieSessionsParams{
				Date:  &openapi_types.Date{Time: day},
				Movie: ptr("1,2"),
			},
			wantFilters: &domain.MovieSessionFilters{
				Date:     &day,
				MovieIDs: []int{1, 2},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid movie id",
			params: api.GetMovieSessionsParams{
				Movie: ptr("x"),
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `invalid id: "x"`,
		},
		{
			name:           "database error",
			params:         api.GetMovieSessionsParams{},
			repoErr:        fmt.Errorf("database connection error"),
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilters *domain.MovieSessionFilters

			app := newTestApplication(func(a *Application) {
				a.movieSessionRepo = &mocks.MockMovieSessionRepo{
					GetAllFunc: func(ctx context.Context, filters domain.MovieSessionFilters) ([]*domain.MovieSession, error) {
						gotFilters = &filters
						if tt.repoErr != nil {
							return nil, tt.repoErr
						}

						return []*domain.MovieSession{
							{
								ID:               7,
								ShowTime:         testShowTime,
								Movie:            *testMovie,
								CinemaHall:       testHall,
								TicketsAvailable: 117,
							},
						}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/movie-sessions", nil)

			app.GetMovieSessions(w, r, tt.params)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantFilters != nil {
				if diff := cmp.Diff(tt.wantFilters, gotFilters); diff != "" {
					t.Errorf("GetMovieSessions() filters mismatch (-want +got):\n%s", diff)
				}
			}

			if tt.wantStatus == http.StatusOK {
				var response []api.MovieSessionListItem
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

				want := []api.MovieSessionListItem{
					{
						Id:                 7,
						ShowTime:           testShowTime,
						MovieTitle:         "Bohemian Rhapsody",
						CinemaHallName:     "Red",
						CinemaHallCapacity: 120,
						TicketsAvailable:   117,
					},
				}

				if diff := cmp.Diff(want, response); diff != "" {
					t.Errorf("GetMovieSessions() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetMovieSessionById(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.movieSessionRepo = &mocks.MockMovieSessionRepo{
			GetByIdFunc: func(ctx context.Context, id int) (*domain.MovieSession, error) {
				if id != 7 {
					return nil, domain.ErrRecordNotFound
				}

				return &domain.MovieSession{
					ID:               7,
					ShowTime:         testShowTime,
					Movie:            *testMovie,
					CinemaHall:       testHall,
					TicketsAvailable: 118,
					TakenPlaces:      []domain.Place{{Row: 1, Seat: 1}, {Row: 2, Seat: 5}},
				}, nil
			},
		}
	})

	t.Run("successful retrieval", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodGet, "/movie-sessions/7", nil)

		app.GetMovieSessionById(w, r, 7)

		require.Equal(t, http.StatusOK, w.Code)

		var response api.MovieSessionDetail
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

		assert.Equal(t, 7, response.Id)
		assert.Equal(t, 118, response.TicketsAvailable)
		assert.Equal(t, api.CinemaHall{Id: 1, Name: "Red", Rows: 10, SeatsInRow: 12, Capacity: 120}, response.CinemaHall)
		assert.Equal(t, []api.Place{{Row: 1, Seat: 1}, {Row: 2, Seat: 5}}, response.TakenPlaces)
		assert.Equal(t, []string{"Drama", "Music"}, response.Movie.Genres)
	})

	t.Run("session not found", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodGet, "/movie-sessions/8", nil)

		app.GetMovieSessionById(w, r, 8)

		checkErrorResponse(t, w, struct {
			wantStatus     int
			wantErrMessage string
		}{
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		})
	})
}

func TestCreateMovieSession(t *testing.T) {
	tests := []struct {
		name           string
		input          any
		createErr      error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful creation",
			input: api.MovieSessionRequest{
				ShowTime:   testShowTime,
				Movie:      1,
				CinemaHall: 1,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing show time",
			input: map[string]any{
				"movie":      1,
				"cinemaHall": 1,
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "malformed show time",
			input: map[string]any{
				"showTime":   "tomorrow",
				"movie":      1,
				"cinemaHall": 1,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown cinema hall",
			input: api.MovieSessionRequest{
				ShowTime:   testShowTime,
				Movie:      1,
				CinemaHall: 99,
			},
			createErr:      domain.ErrInvalidReference,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: domain.ErrInvalidReference.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.movieSessionRepo = &mocks.MockMovieSessionRepo{
					CreateFunc: func(ctx context.Context, session *domain.MovieSession) error {
						if tt.createErr != nil {
							return tt.createErr
						}

						session.ID = 7
						return nil
					},
					GetByIdFunc: func(ctx context.Context, id int) (*domain.MovieSession, error) {
						return &domain.MovieSession{
							ID:               id,
							ShowTime:         testShowTime,
							Movie:            *testMovie,
							CinemaHall:       testHall,
							TicketsAvailable: testHall.Capacity(),
						}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/movie-sessions", tt.input)

			app.CreateMovieSession(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var response api.MovieSessionDetail
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

				assert.Equal(t, 7, response.Id)
				assert.Equal(t, 120, response.TicketsAvailable)
				assert.Empty(t, response.TakenPlaces)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
