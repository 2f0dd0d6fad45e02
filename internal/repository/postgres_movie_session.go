package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

type PostgresMovieSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieSessionRepository(db *pgxpool.Pool) *PostgresMovieSessionRepository {
	return &PostgresMovieSessionRepository{
		db: db,
	}
}

// GetAll lists sessions with the number of seats still free, derived from the
// hall dimensions minus the tickets sold so far. The date filter matches the
// UTC calendar day of the show time whatever the session time zone is.
func (p *PostgresMovieSessionRepository) GetAll(
	ctx context.Context,
	filters domain.MovieSessionFilters) ([]*domain.MovieSession, error) {

	query := `
		SELECT
			s.id,
			s.show_time,
			m.id,
			m.title,
			h.id,
			h.name,
			h.rows,
			h.seats_in_row,
			h.rows * h.seats_in_row - COUNT(t.id)
		FROM movie_sessions s
		JOIN movies m ON m.id = s.movie_id
		JOIN cinema_halls h ON h.id = s.cinema_hall_id
		LEFT JOIN tickets t ON t.movie_session_id = s.id
		WHERE ($1::date IS NULL OR (s.show_time AT TIME ZONE 'UTC')::date = $1::date)
			AND (COALESCE(cardinality($2::int[]), 0) = 0 OR s.movie_id = ANY($2::int[]))
		GROUP BY s.id, m.id, h.id
		ORDER BY s.show_time, s.id
	`

	rows, err := p.db.Query(ctx, query, filters.Date, filters.MovieIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*domain.MovieSession{}

	for rows.Next() {
		var session domain.MovieSession

		err := rows.Scan(
			&session.ID,
			&session.ShowTime,
			&session.Movie.ID,
			&session.Movie.Title,
			&session.CinemaHall.ID,
			&session.CinemaHall.Name,
			&session.CinemaHall.Rows,
			&session.CinemaHall.SeatsInRow,
			&session.TicketsAvailable,
		)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, &session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (p *PostgresMovieSessionRepository) GetById(ctx context.Context, id int) (*domain.MovieSession, error) {
	query := `
		SELECT
			s.id,
			s.show_time,
			h.id,
			h.name,
			h.rows,
			h.seats_in_row,` + movieColumns + `
		FROM movie_sessions s
		JOIN movies m ON m.id = s.movie_id
		JOIN cinema_halls h ON h.id = s.cinema_hall_id
		WHERE s.id = $1
	`

	var (
		session domain.MovieSession
		genres  []genreRow
		actors  []actorRow
	)

	err := p.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.ShowTime,
		&session.CinemaHall.ID,
		&session.CinemaHall.Name,
		&session.CinemaHall.Rows,
		&session.CinemaHall.SeatsInRow,
		&session.Movie.ID,
		&session.Movie.Title,
		&session.Movie.Description,
		&session.Movie.Duration,
		&genres,
		&actors,
	)
	if err != nil {
		return nil, notFoundIfNoRows(err)
	}

	session.Movie.Genres = make([]domain.Genre, len(genres))
	for i, g := range genres {
		session.Movie.Genres[i] = domain.Genre{ID: g.ID, Name: g.Name}
	}

	session.Movie.Actors = make([]domain.Actor, len(actors))
	for i, a := range actors {
		session.Movie.Actors[i] = domain.Actor{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
	}

	places, err := p.takenPlaces(ctx, id)
	if err != nil {
		return nil, err
	}

	session.TakenPlaces = places
	session.TicketsAvailable = session.CinemaHall.Capacity() - len(places)

	return &session, nil
}

func (p *PostgresMovieSessionRepository) takenPlaces(ctx context.Context, sessionId int) ([]domain.Place, error) {
	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE movie_session_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := p.db.Query(ctx, query, sessionId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	places := make([]domain.Place, 0)

	for rows.Next() {
		var place domain.Place

		err := rows.Scan(&place.Row, &place.Seat)
		if err != nil {
			return nil, err
		}

		places = append(places, place)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return places, nil
}

func (p *PostgresMovieSessionRepository) Create(ctx context.Context, session *domain.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (show_time, movie_id, cinema_hall_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		session.ShowTime,
		session.Movie.ID,
		session.CinemaHall.ID).Scan(&session.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	return nil
}

func (p *PostgresMovieSessionRepository) Update(ctx context.Context, session *domain.MovieSession) error {
	query := `
		UPDATE movie_sessions
		SET show_time = $1, movie_id = $2, cinema_hall_id = $3
		WHERE id = $4
	`

	tag, err := p.db.Exec(
		ctx,
		query,
		session.ShowTime,
		session.Movie.ID,
		session.CinemaHall.ID,
		session.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieSessionRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movie_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
