package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	TestUserPassword = "Test123!@#"
	TestCustomer     = "customer@example.com"
	TestStaff        = "staff@example.com"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return req
}

func jsonBody(t testing.TB, v any) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

// compareResponse compares a JSON body with the expected document, ignoring
// fields whose values differ on every run.
func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	clean(actual)
	clean(expected)

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func clean(v any) {
	switch v := v.(type) {
	case map[string]any:
		for k, nested := range v {
			if _, ok := keysToIgnore[k]; ok {
				delete(v, k)
				continue
			}
			clean(nested)
		}
	case []any:
		for _, nested := range v {
			clean(nested)
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `
		TRUNCATE users, genres, actors, cinema_halls, movies, movie_sessions, orders, tickets
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}

func insertUser(t testing.TB, db *pgxpool.Pool, email string, isStaff bool) int {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestUserPassword), bcrypt.MinCost)
	require.NoError(t, err)

	var id int
	err = db.QueryRow(context.Background(), `
		INSERT INTO users (first_name, last_name, email, password_hash, is_staff)
		VALUES ('John', 'Doe', $1, $2, $3)
		RETURNING id
	`, email, hash, isStaff).Scan(&id)
	require.NoError(t, err)

	return id
}

// login authenticates email through the API and returns the session cookies.
func (app *TestApp) login(t testing.TB, email string) []*http.Cookie {
	body := jsonBody(t, map[string]string{"email": email, "password": TestUserPassword})

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, prepareRequest(http.MethodPost, "/users/login", body, nil, nil))

	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode, "login failed for %s", email)
	require.NotEmpty(t, res.Cookies())

	return res.Cookies()
}

// do sends a request through the router and decodes a JSON answer into dst
// when dst is not nil.
func (app *TestApp) do(t testing.TB, method, url string, body any, cookies []*http.Cookie, dst any) int {
	var reader io.Reader
	if body != nil {
		reader = jsonBody(t, body)
	}

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, prepareRequest(method, url, reader, nil, cookies))

	res := rec.Result()
	defer res.Body.Close()

	if dst != nil && res.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(res.Body).Decode(dst))
	}

	return res.StatusCode
}

type catalog struct {
	genres   map[string]int
	actors   map[string]int
	halls    map[string]int
	movies   map[string]int
	sessions []int
}

// seedCatalog stores a small catalog: two halls, three movies and four
// sessions on two days.
func seedCatalog(t testing.TB, db *pgxpool.Pool) catalog {
	ctx := context.Background()
	c := catalog{
		genres: make(map[string]int),
		actors: make(map[string]int),
		halls:  make(map[string]int),
		movies: make(map[string]int),
	}

	insert := func(query string, args ...any) int {
		var id int
		require.NoError(t, db.QueryRow(ctx, query, args...).Scan(&id))
		return id
	}

	for _, name := range []string{"Drama", "Music", "Comedy"} {
		c.genres[name] = insert(`INSERT INTO genres (name) VALUES ($1) RETURNING id`, name)
	}

	for _, name := range []string{"Rami Malek", "Lucy Boynton", "Jim Carrey"} {
		first, last, _ := strings.Cut(name, " ")
		c.actors[name] = insert(`INSERT INTO actors (first_name, last_name) VALUES ($1, $2) RETURNING id`, first, last)
	}

	c.halls["Red"] = insert(`INSERT INTO cinema_halls (name, rows, seats_in_row) VALUES ('Red', 10, 12) RETURNING id`)
	c.halls["Small"] = insert(`INSERT INTO cinema_halls (name, rows, seats_in_row) VALUES ('Small', 2, 3) RETURNING id`)

	movies := []struct {
		title  string
		genres []string
		actors []string
	}{
		{"Bohemian Rhapsody", []string{"Drama", "Music"}, []string{"Rami Malek", "Lucy Boynton"}},
		{"The Mask", []string{"Comedy"}, []string{"Jim Carrey"}},
		{"Rhapsody in Blue", []string{"Music"}, nil},
	}

	for _, m := range movies {
		id := insert(`INSERT INTO movies (title, description, duration) VALUES ($1, 'description', 120) RETURNING id`, m.title)
		c.movies[m.title] = id

		for _, genre := range m.genres {
			_, err := db.Exec(ctx, `INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)`, id, c.genres[genre])
			require.NoError(t, err)
		}

		for _, actor := range m.actors {
			_, err := db.Exec(ctx, `INSERT INTO movie_actors (movie_id, actor_id) VALUES ($1, $2)`, id, c.actors[actor])
			require.NoError(t, err)
		}
	}

	day1 := time.Date(2095, 1, 1, 18, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	sessions := []struct {
		showTime time.Time
		movie    string
		hall     string
	}{
		{day1, "Bohemian Rhapsody", "Red"},
		{day1.Add(3 * time.Hour), "The Mask", "Small"},
		{day2, "Bohemian Rhapsody", "Small"},
		{day2, "Rhapsody in Blue", "Red"},
	}

	for _, session := range sessions {
		c.sessions = append(c.sessions, insert(
			`INSERT INTO movie_sessions (show_time, movie_id, cinema_hall_id) VALUES ($1, $2, $3) RETURNING id`,
			session.showTime, c.movies[session.movie], c.halls[session.hall],
		))
	}

	return c
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	var count int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}
