package domain

import "context"

type Movie struct {
	ID          int
	Title       string
	Description string
	Duration    int
	Genres      []Genre
	Actors      []Actor
}

// MovieFilters narrows a movie listing. Empty fields are ignored, non-empty
// id sets match movies sharing at least one id.
type MovieFilters struct {
	Title    string
	GenreIDs []int
	ActorIDs []int
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
