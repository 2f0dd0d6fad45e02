package app

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
	"github.com/metinatakli/cinema-booking-api/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	contractCustomerId = 1
	contractStaffId    = 2
	missingId          = 999
	contractPassword   = "pa55word-Secret"
)

// contractApplication returns an application whose repositories answer with
// fully populated records, so every documented response shape is produced.
func contractApplication(t *testing.T, doc *openapi3.T) *Application {
	t.Helper()

	showTime := time.Date(2095, 1, 1, 22, 30, 0, 0, time.UTC)
	hall := domain.CinemaHall{ID: 1, Name: "Red", Rows: 10, SeatsInRow: 12}
	genre := domain.Genre{ID: 1, Name: "Drama"}
	actor := domain.Actor{ID: 1, FirstName: "Ada", LastName: "Lovelace"}
	movie := &domain.Movie{
		ID:          1,
		Title:       "The Engine",
		Description: "A story about the first program",
		Duration:    120,
		Genres:      []domain.Genre{genre},
		Actors:      []domain.Actor{actor},
	}
	session := &domain.MovieSession{
		ID:               1,
		ShowTime:         showTime,
		Movie:            *movie,
		CinemaHall:       hall,
		TicketsAvailable: 119,
		TakenPlaces:      []domain.Place{{Row: 1, Seat: 1}},
	}
	order := &domain.Order{
		ID:        1,
		UserID:    contractCustomerId,
		CreatedAt: showTime.Add(-48 * time.Hour),
		Tickets:   []domain.Ticket{{ID: 1, Row: 1, Seat: 1, MovieSession: *session}},
	}

	customer := &domain.User{
		ID:        contractCustomerId,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CreatedAt: showTime.Add(-720 * time.Hour),
	}
	require.NoError(t, customer.Password.Set(contractPassword))

	staff := &domain.User{
		ID:        contractStaffId,
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		IsStaff:   true,
		CreatedAt: showTime.Add(-720 * time.Hour),
	}

	notFound := func(id int) error {
		if id == missingId {
			return domain.ErrRecordNotFound
		}
		return nil
	}

	orderRepo := &mocks.MockOrderRepo{}
	orderRepo.On("GetAllByUserId", mock.Anything, contractCustomerId, mock.Anything).
		Return([]*domain.Order{order}, domain.NewMetadata(4, 1, DefaultOrdersPageSize), nil)
	orderRepo.On("GetByIdAndUserId", mock.Anything, 1, contractCustomerId).Return(order, nil)
	orderRepo.On("GetByIdAndUserId", mock.Anything, missingId, contractCustomerId).Return(nil, domain.ErrRecordNotFound)
	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool { return o.Tickets[0].Row == 1 })).
		Run(func(args mock.Arguments) {
			stored := args.Get(1).(*domain.Order)
			*stored = *order
		}).
		Return(nil)
	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool { return o.Tickets[0].Row == 2 })).
		Return(domain.ErrSeatAlreadyReserved)
	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool { return o.Tickets[0].Row == 50 })).
		Return(&domain.TicketValidationError{Field: "row", Message: "row number must be in available range: (1, rows): (1, 10)"})

	return newTestApplication(func(a *Application) {
		a.openapi = doc
		a.orderRepo = orderRepo
		a.userRepo = &mocks.MockUserRepo{
			CreateFunc: func(ctx context.Context, user *domain.User) error {
				if user.Email == customer.Email {
					return domain.ErrUserAlreadyExists
				}
				user.ID = 3
				user.CreatedAt = showTime
				return nil
			},
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				if email == customer.Email {
					return customer, nil
				}
				return nil, domain.ErrRecordNotFound
			},
			GetByIdFunc: func(ctx context.Context, id int) (*domain.User, error) {
				switch id {
				case contractCustomerId:
					return customer, nil
				case contractStaffId:
					return staff, nil
				default:
					return nil, domain.ErrRecordNotFound
				}
			},
		}
		a.genreRepo = &mocks.MockGenreRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.Genre, error) {
				return []domain.Genre{genre}, nil
			},
			GetByIdFunc: func(ctx context.Context, id int) (*domain.Genre, error) {
				if err := notFound(id); err != nil {
					return nil, err
				}
				return &genre, nil
			},
			CreateFunc: func(ctx context.Context, g *domain.Genre) error {
				if g.Name == genre.Name {
					return domain.ErrDuplicateName
				}
				g.ID = 2
				return nil
			},
			UpdateFunc: func(ctx context.Context, g *domain.Genre) error {
				return notFound(g.ID)
			},
			DeleteFunc: func(ctx context.Context, id int) error {
				return notFound(id)
			},
		}
		a.actorRepo = &mocks.MockActorRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.Actor, error) {
				return []domain.Actor{actor}, nil
			},
			GetByIdFunc: func(ctx context.Context, id int) (*domain.Actor, error) {
				if err := notFound(id); err != nil {
					return nil, err
				}
				return &actor, nil
			},
			CreateFunc: func(ctx context.Context, a *domain.Actor) error {
				a.ID = 2
				return nil
			},
			UpdateFunc: func(ctx context.Context, a *domain.Actor) error {
				return notFound(a.ID)
			},
			DeleteFunc: func(ctx context.Context, id int) error {
				return notFound(id)
			},
		}
		a.cinemaHallRepo = &mocks.MockCinemaHallRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.CinemaHall, error) {
				return []domain.CinemaHall{hall}, nil
			},
			GetByIdFunc: func(ctx context.Context, id int) (*domain.CinemaHall, error) {
				if err := notFound(id); err != nil {
					return nil, err
				}
				return &hall, nil
			},
			CreateFunc: func(ctx context.Context, h *domain.CinemaHall) error {
				h.ID = 2
				return nil
			},
			UpdateFunc: func(ctx context.Context, h *domain.CinemaHall) error {
				return notFound(h.ID)
			},
			DeleteFunc: func(ctx context.Context, id int) error {
				return notFound(id)
			},
		}
		a.movieRepo = &mocks.MockMovieRepo{
			GetAllFunc: func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
				return []*domain.Movie{movie}, nil
			},
			GetByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				if err := notFound(id); err != nil {
					return nil, err
				}
				return movie, nil
			},
			CreateFunc: func(ctx context.Context, m *domain.Movie) error {
				if len(m.Genres) > 0 && m.Genres[0].ID == missingId {
					return domain.ErrInvalidReference
				}
				m.ID = 1
				return nil
			},
			UpdateFunc: func(ctx context.Context, m *domain.Movie) error {
				return notFound(m.ID)
			},
			DeleteFunc: func(ctx context.Context, id int) error {
				return notFound(id)
			},
		}
		a.movieSessionRepo = &mocks.MockMovieSessionRepo{
			GetAllFunc: func(ctx context.Context, filters domain.MovieSessionFilters) ([]*domain.MovieSession, error) {
				return []*domain.MovieSession{session}, nil
			},
			GetByIdFunc: func(ctx context.Context, id int) (*domain.MovieSession, error) {
				if err := notFound(id); err != nil {
					return nil, err
				}
				return session, nil
			},
			CreateFunc: func(ctx context.Context, s *domain.MovieSession) error {
				if s.CinemaHall.ID == missingId {
					return domain.ErrInvalidReference
				}
				s.ID = 1
				return nil
			},
			UpdateFunc: func(ctx context.Context, s *domain.MovieSession) error {
				return notFound(s.ID)
			},
			DeleteFunc: func(ctx context.Context, id int) error {
				return notFound(id)
			},
		}
	})
}

// TestResponsesMatchOpenAPIDocument sends requests through the full router
// and checks both the request and the response against api.yaml.
func TestResponsesMatchOpenAPIDocument(t *testing.T) {
	showTime := time.Date(2095, 1, 1, 22, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		method string
		url    string
		body   any
		userId int
		// requests that break the documented schema on purpose
		skipRequestCheck bool
		wantStatus       int
	}{
		{name: "healthcheck", method: http.MethodGet, url: "/healthcheck", wantStatus: http.StatusOK},
		{name: "openapi document", method: http.MethodGet, url: "/openapi.json", wantStatus: http.StatusOK},

		{name: "register", method: http.MethodPost, url: "/users", body: api.RegisterRequest{Email: "alan@example.com", FirstName: "Alan", LastName: "Turing", Password: contractPassword}, wantStatus: http.StatusCreated},
		{name: "register taken email", method: http.MethodPost, url: "/users", body: api.RegisterRequest{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Password: contractPassword}, wantStatus: http.StatusBadRequest},
		{name: "register invalid", method: http.MethodPost, url: "/users", body: api.RegisterRequest{Email: "ada", FirstName: "A", LastName: "L", Password: "short"}, wantStatus: http.StatusUnprocessableEntity},
		{name: "login", method: http.MethodPost, url: "/users/login", body: api.LoginRequest{Email: "ada@example.com", Password: contractPassword}, wantStatus: http.StatusNoContent},
		{name: "login wrong password", method: http.MethodPost, url: "/users/login", body: api.LoginRequest{Email: "ada@example.com", Password: "wrong-password"}, wantStatus: http.StatusUnauthorized},
		{name: "login already logged in", method: http.MethodPost, url: "/users/login", body: api.LoginRequest{Email: "ada@example.com", Password: contractPassword}, userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "logout", method: http.MethodPost, url: "/users/logout", userId: contractCustomerId, wantStatus: http.StatusNoContent},
		{name: "logout without session", method: http.MethodPost, url: "/users/logout", wantStatus: http.StatusNotFound},
		{name: "current user", method: http.MethodGet, url: "/users/me", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "current user anonymous", method: http.MethodGet, url: "/users/me", wantStatus: http.StatusUnauthorized},

		{name: "list genres", method: http.MethodGet, url: "/genres", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "get genre", method: http.MethodGet, url: "/genres/1", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "get missing genre", method: http.MethodGet, url: "/genres/999", userId: contractCustomerId, wantStatus: http.StatusNotFound},
		{name: "create genre", method: http.MethodPost, url: "/genres", body: api.GenreRequest{Name: "Comedy"}, userId: contractStaffId, wantStatus: http.StatusCreated},
		{name: "create genre as customer", method: http.MethodPost, url: "/genres", body: api.GenreRequest{Name: "Comedy"}, userId: contractCustomerId, wantStatus: http.StatusForbidden},
		{name: "create duplicate genre", method: http.MethodPost, url: "/genres", body: api.GenreRequest{Name: "Drama"}, userId: contractStaffId, wantStatus: http.StatusConflict},
		{name: "create blank genre", method: http.MethodPost, url: "/genres", body: api.GenreRequest{Name: "  "}, userId: contractStaffId, wantStatus: http.StatusUnprocessableEntity},
		{name: "update genre", method: http.MethodPut, url: "/genres/1", body: api.GenreRequest{Name: "Thriller"}, userId: contractStaffId, wantStatus: http.StatusOK},
		{name: "update missing genre", method: http.MethodPut, url: "/genres/999", body: api.GenreRequest{Name: "Thriller"}, userId: contractStaffId, wantStatus: http.StatusNotFound},
		{name: "delete genre", method: http.MethodDelete, url: "/genres/1", userId: contractStaffId, wantStatus: http.StatusNoContent},

		{name: "list actors", method: http.MethodGet, url: "/actors", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "get actor", method: http.MethodGet, url: "/actors/1", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "create actor", method: http.MethodPost, url: "/actors", body: api.ActorRequest{FirstName: "Alan", LastName: "Turing"}, userId: contractStaffId, wantStatus: http.StatusCreated},
		{name: "update actor", method: http.MethodPut, url: "/actors/1", body: api.ActorRequest{FirstName: "Alan", LastName: "Turing"}, userId: contractStaffId, wantStatus: http.StatusOK},
		{name: "delete missing actor", method: http.MethodDelete, url: "/actors/999", userId: contractStaffId, wantStatus: http.StatusNotFound},

		{name: "list cinema halls", method: http.MethodGet, url: "/cinema-halls", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "get cinema hall", method: http.MethodGet, url: "/cinema-halls/1", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "create cinema hall", method: http.MethodPost, url: "/cinema-halls", body: api.CinemaHallRequest{Name: "Blue", Rows: 8, SeatsInRow: 10}, userId: contractStaffId, wantStatus: http.StatusCreated},
		{name: "create oversized cinema hall", method: http.MethodPost, url: "/cinema-halls", body: api.CinemaHallRequest{Name: "Huge", Rows: 500, SeatsInRow: 10}, userId: contractStaffId, skipRequestCheck: true, wantStatus: http.StatusUnprocessableEntity},
		{name: "update cinema hall", method: http.MethodPut, url: "/cinema-halls/1", body: api.CinemaHallRequest{Name: "Blue", Rows: 8, SeatsInRow: 10}, userId: contractStaffId, wantStatus: http.StatusOK},
		{name: "delete cinema hall", method: http.MethodDelete, url: "/cinema-halls/1", userId: contractStaffId, wantStatus: http.StatusNoContent},

		{name: "list movies", method: http.MethodGet, url: "/movies?title=engine&genres=1,2&actors=1", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "list movies with malformed ids", method: http.MethodGet, url: "/movies?genres=one", userId: contractCustomerId, wantStatus: http.StatusBadRequest},
		{name: "get movie", method: http.MethodGet, url: "/movies/1", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "create movie", method: http.MethodPost, url: "/movies", body: api.MovieRequest{Title: "The Engine", Description: "A story", Duration: 120, Genres: []int{1}, Actors: []int{1}}, userId: contractStaffId, wantStatus: http.StatusCreated},
		{name: "create movie with unknown genre", method: http.MethodPost, url: "/movies", body: api.MovieRequest{Title: "The Engine", Description: "A story", Duration: 120, Genres: []int{missingId}}, userId: contractStaffId, wantStatus: http.StatusBadRequest},
		{name: "update movie", method: http.MethodPut, url: "/movies/1", body: api.MovieRequest{Title: "The Engine", Description: "A story", Duration: 125}, userId: contractStaffId, wantStatus: http.StatusOK},
		{name: "delete movie", method: http.MethodDelete, url: "/movies/1", userId: contractStaffId, wantStatus: http.StatusNoContent},

		{name: "list movie sessions", method: http.MethodGet, url: "/movie-sessions?date=2095-01-01&movie=1", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "get movie session", method: http.MethodGet, url: "/movie-sessions/1", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "get missing movie session", method: http.MethodGet, url: "/movie-sessions/999", userId: contractCustomerId, wantStatus: http.StatusNotFound},
		{name: "create movie session", method: http.MethodPost, url: "/movie-sessions", body: api.MovieSessionRequest{ShowTime: showTime, Movie: 1, CinemaHall: 1}, userId: contractStaffId, wantStatus: http.StatusCreated},
		{name: "create movie session in unknown hall", method: http.MethodPost, url: "/movie-sessions", body: api.MovieSessionRequest{ShowTime: showTime, Movie: 1, CinemaHall: missingId}, userId: contractStaffId, wantStatus: http.StatusBadRequest},
		{name: "update movie session", method: http.MethodPut, url: "/movie-sessions/1", body: api.MovieSessionRequest{ShowTime: showTime, Movie: 1, CinemaHall: 1}, userId: contractStaffId, wantStatus: http.StatusOK},
		{name: "delete movie session", method: http.MethodDelete, url: "/movie-sessions/1", userId: contractStaffId, wantStatus: http.StatusNoContent},

		{name: "list orders", method: http.MethodGet, url: "/orders?page=1&pageSize=3", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "list orders past the last allowed page", method: http.MethodGet, url: "/orders?page=4000000000000000000", userId: contractCustomerId, skipRequestCheck: true, wantStatus: http.StatusUnprocessableEntity},
		{name: "get order", method: http.MethodGet, url: "/orders/1", userId: contractCustomerId, wantStatus: http.StatusOK},
		{name: "get missing order", method: http.MethodGet, url: "/orders/999", userId: contractCustomerId, wantStatus: http.StatusNotFound},
		{name: "create order", method: http.MethodPost, url: "/orders", body: api.CreateOrderRequest{Tickets: []api.TicketRequest{{MovieSession: 1, Row: 1, Seat: 2}}}, userId: contractCustomerId, wantStatus: http.StatusCreated},
		{name: "create order for a taken seat", method: http.MethodPost, url: "/orders", body: api.CreateOrderRequest{Tickets: []api.TicketRequest{{MovieSession: 1, Row: 2, Seat: 2}}}, userId: contractCustomerId, wantStatus: http.StatusConflict},
		{name: "create order outside the hall", method: http.MethodPost, url: "/orders", body: api.CreateOrderRequest{Tickets: []api.TicketRequest{{MovieSession: 1, Row: 50, Seat: 2}}}, userId: contractCustomerId, wantStatus: http.StatusUnprocessableEntity},
		{name: "create empty order", method: http.MethodPost, url: "/orders", body: api.CreateOrderRequest{Tickets: []api.TicketRequest{}}, userId: contractCustomerId, wantStatus: http.StatusUnprocessableEntity},
	}

	doc, err := api.GetSwagger()
	require.NoError(t, err)

	// match on paths only, requests are sent to the test host
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	require.NoError(t, err)

	app := contractApplication(t, doc)
	handler := app.Routes()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, r := executeRequest(t, tt.method, tt.url, tt.body)
			if tt.body == nil {
				r.Header.Del("Content-Type")
			}

			if tt.userId != 0 {
				r.AddCookie(loginCookie(t, app, tt.userId))
			}

			route, pathParams, err := router.FindRoute(r)
			require.NoError(t, err)

			requestInput := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}

			if !tt.skipRequestCheck {
				require.NoError(t, openapi3filter.ValidateRequest(context.Background(), requestInput))
			}

			handler.ServeHTTP(w, r)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			validateResponse(t, requestInput, route, w.Code, w.Header(), w.Body.Bytes())
		})
	}
}

func validateResponse(t *testing.T, input *openapi3filter.RequestValidationInput, route *routers.Route, status int, header http.Header, body []byte) {
	t.Helper()

	responseInput := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: input,
		Status:                 status,
		Header:                 header,
		Body:                   io.NopCloser(bytes.NewReader(body)),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	err := openapi3filter.ValidateResponse(context.Background(), responseInput)
	require.NoError(t, err, "%s %s answered %d: %s", input.Request.Method, route.Path, status, body)
}
