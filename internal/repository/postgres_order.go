package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		db: db,
	}
}

// Create stores the order and all of its tickets in a single transaction.
// Tickets are validated against the hall of their session inside the same
// transaction; seat uniqueness is left to the tickets unique constraint so
// that concurrent orders for one seat cannot both commit.
func (p *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if len(order.Tickets) == 0 {
		return domain.ErrEmptyOrder
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		halls, err := hallsBySessionIds(ctx, tx, order.MovieSessionIDs())
		if err != nil {
			return err
		}

		err = order.ValidateTickets(halls)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO orders (user_id)
			VALUES ($1)
			RETURNING id, created_at
		`

		err = tx.QueryRow(ctx, query, order.UserID).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(order.Tickets))
		for _, ticket := range order.Tickets {
			rows = append(rows, []any{
				ticket.MovieSession.ID,
				order.ID,
				ticket.Row,
				ticket.Seat,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"tickets"},
			[]string{"movie_session_id", "order_id", "seat_row", "seat_number"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return err
		}

		tickets, err := ticketsByOrderIds(ctx, tx, []int{order.ID})
		if err != nil {
			return err
		}

		order.Tickets = tickets[order.ID]

		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatAlreadyReserved
		}

		return err
	}

	return nil
}

func (p *PostgresOrderRepository) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]*domain.Order, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	orderIds := make([]int, 0)
	totalRecords := 0

	for rows.Next() {
		var order domain.Order

		err := rows.Scan(&totalRecords, &order.ID, &order.UserID, &order.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		orders = append(orders, &order)
		orderIds = append(orderIds, order.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(orders) == 0 {
		// COUNT(*) OVER() yields nothing for a page past the end
		totalRecords, err = p.countByUserId(ctx, userId)
		if err != nil {
			return nil, nil, err
		}
	}

	tickets, err := ticketsByOrderIds(ctx, p.db, orderIds)
	if err != nil {
		return nil, nil, err
	}

	for _, order := range orders {
		order.Tickets = tickets[order.ID]
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return orders, metadata, nil
}

func (p *PostgresOrderRepository) countByUserId(ctx context.Context, userId int) (int, error) {
	var count int

	err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userId).Scan(&count)

	return count, err
}

func (p *PostgresOrderRepository) GetByIdAndUserId(ctx context.Context, id, userId int) (*domain.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2
	`

	var order domain.Order

	err := p.db.QueryRow(ctx, query, id, userId).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err != nil {
		return nil, notFoundIfNoRows(err)
	}

	tickets, err := ticketsByOrderIds(ctx, p.db, []int{order.ID})
	if err != nil {
		return nil, err
	}

	order.Tickets = tickets[order.ID]

	return &order, nil
}

func hallsBySessionIds(ctx context.Context, q querier, sessionIds []int) (map[int]domain.CinemaHall, error) {
	query := `
		SELECT s.id, h.id, h.name, h.rows, h.seats_in_row
		FROM movie_sessions s
		JOIN cinema_halls h ON h.id = s.cinema_hall_id
		WHERE s.id = ANY($1::int[])
	`

	rows, err := q.Query(ctx, query, sessionIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make(map[int]domain.CinemaHall, len(sessionIds))

	for rows.Next() {
		var (
			sessionId int
			hall      domain.CinemaHall
		)

		err := rows.Scan(&sessionId, &hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
		if err != nil {
			return nil, err
		}

		halls[sessionId] = hall
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

// ticketsByOrderIds loads the tickets of the given orders together with a
// summary of their movie session, grouped by order id.
func ticketsByOrderIds(ctx context.Context, q querier, orderIds []int) (map[int][]domain.Ticket, error) {
	tickets := make(map[int][]domain.Ticket, len(orderIds))
	if len(orderIds) == 0 {
		return tickets, nil
	}

	query := `
		SELECT
			t.order_id,
			t.id,
			t.seat_row,
			t.seat_number,
			s.id,
			s.show_time,
			m.id,
			m.title,
			h.id,
			h.name,
			h.rows,
			h.seats_in_row
		FROM tickets t
		JOIN movie_sessions s ON s.id = t.movie_session_id
		JOIN movies m ON m.id = s.movie_id
		JOIN cinema_halls h ON h.id = s.cinema_hall_id
		WHERE t.order_id = ANY($1::int[])
		ORDER BY t.id
	`

	rows, err := q.Query(ctx, query, orderIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderId int
			ticket  domain.Ticket
		)

		err := rows.Scan(
			&orderId,
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.MovieSession.ID,
			&ticket.MovieSession.ShowTime,
			&ticket.MovieSession.Movie.ID,
			&ticket.MovieSession.Movie.Title,
			&ticket.MovieSession.CinemaHall.ID,
			&ticket.MovieSession.CinemaHall.Name,
			&ticket.MovieSession.CinemaHall.Rows,
			&ticket.MovieSession.CinemaHall.SeatsInRow,
		)
		if err != nil {
			return nil, err
		}

		tickets[orderId] = append(tickets[orderId], ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
