package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

// movieColumns selects a movie together with its genres and actors
// aggregated as jsonb arrays. The movies table must be aliased as m.
const movieColumns = `
	m.id,
	m.title,
	m.description,
	m.duration,
	COALESCE((
		SELECT jsonb_agg(jsonb_build_object('id', g.id, 'name', g.name) ORDER BY g.id)
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = m.id
	), '[]'::jsonb),
	COALESCE((
		SELECT jsonb_agg(
			jsonb_build_object('id', a.id, 'firstName', a.first_name, 'lastName', a.last_name)
			ORDER BY a.id)
		FROM movie_actors ma
		JOIN actors a ON a.id = ma.actor_id
		WHERE ma.movie_id = m.id
	), '[]'::jsonb)`

type genreRow struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type actorRow struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies m
		WHERE ($1 = '' OR m.title ILIKE $2)
			AND (COALESCE(cardinality($3::int[]), 0) = 0 OR EXISTS (
				SELECT 1 FROM movie_genres mg WHERE mg.movie_id = m.id AND mg.genre_id = ANY($3::int[])))
			AND (COALESCE(cardinality($4::int[]), 0) = 0 OR EXISTS (
				SELECT 1 FROM movie_actors ma WHERE ma.movie_id = m.id AND ma.actor_id = ANY($4::int[])))
		ORDER BY m.id`

	rows, err := p.db.Query(
		ctx,
		query,
		filters.Title,
		containsPattern(filters.Title),
		filters.GenreIDs,
		filters.ActorIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies m WHERE m.id = $1`

	movie, err := scanMovie(p.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundIfNoRows(err)
	}

	return movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO movies (title, description, duration)
			VALUES ($1, $2, $3)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, movie.Title, movie.Description, movie.Duration).Scan(&movie.ID)
		if err != nil {
			return err
		}

		return insertMovieRelations(ctx, tx, movie)
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE movies
			SET title = $1, description = $2, duration = $3
			WHERE id = $4
		`

		tag, err := tx.Exec(ctx, query, movie.Title, movie.Description, movie.Duration, movie.ID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		_, err = tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movie.ID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movie.ID)
		if err != nil {
			return err
		}

		return insertMovieRelations(ctx, tx, movie)
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func insertMovieRelations(ctx context.Context, tx pgx.Tx, movie *domain.Movie) error {
	genreIds := make([]int, len(movie.Genres))
	for i, genre := range movie.Genres {
		genreIds[i] = genre.ID
	}

	actorIds := make([]int, len(movie.Actors))
	for i, actor := range movie.Actors {
		actorIds[i] = actor.ID
	}

	err := copyRelation(ctx, tx, "movie_genres", "genre_id", movie.ID, distinct(genreIds))
	if err != nil {
		return err
	}

	return copyRelation(ctx, tx, "movie_actors", "actor_id", movie.ID, distinct(actorIds))
}

func copyRelation(ctx context.Context, tx pgx.Tx, table, column string, movieId int, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []any{movieId, id})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{table},
		[]string{"movie_id", column},
		pgx.CopyFromRows(rows),
	)

	return err
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var (
		movie  domain.Movie
		genres []genreRow
		actors []actorRow
	)

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Duration,
		&genres,
		&actors,
	)
	if err != nil {
		return nil, err
	}

	movie.Genres = make([]domain.Genre, len(genres))
	for i, g := range genres {
		movie.Genres[i] = domain.Genre{ID: g.ID, Name: g.Name}
	}

	movie.Actors = make([]domain.Actor, len(actors))
	for i, a := range actors {
		movie.Actors[i] = domain.Actor{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
	}

	return &movie, nil
}
