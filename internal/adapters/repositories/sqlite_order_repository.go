package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restaurant-order/internal/domain"
	"restaurant-order/internal/platform/obs"
	"time"
)

// SQLite-backed implementation of the OrderRepository port.
// created_at is stored as Unix nanoseconds so it sorts as an integer.
type SqliteOrderRepository struct{ DB *sql.DB }

func NewSqliteOrderRepository(db *sql.DB) *SqliteOrderRepository {
	return &SqliteOrderRepository{DB: db}
}

// Store an order and its seats in one transaction.
func (s *SqliteOrderRepository) SaveOrder(ctx context.Context, order *domain.Order) (err error) {
	defer obs.Time(ctx, "orders.sqlite.SaveOrder")(&err)

	if s.DB == nil {
		return errors.New("sqlite order repository: DB is nil")
	}
	if order == nil || order.ID == "" {
		return errors.New("save order: order id must not be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save order: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
	INSERT OR REPLACE INTO orders (
		order_id,
		hour,
		cuisine,
		party_size,
		created_at
	)
	VALUES (?, ?, ?, ?, ?);
	`, order.ID, order.Hour, order.Cuisine.String(), order.PartySize, order.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("save order %s: insert order: %w", order.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_seats WHERE order_id = ?;`, order.ID); err != nil {
		return fmt.Errorf("save order %s: clear seats: %w", order.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO order_seats (
		order_id,
		seat,
		main_course,
		drink,
		repeated
	)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save order %s: prepare seat insert: %w", order.ID, err)
	}
	defer stmt.Close()

	for _, seat := range order.Seats {
		main, drink := seatColumns(seat)
		if _, err := stmt.ExecContext(ctx, order.ID, seat.Number, main, drink, seat.Repeated); err != nil {
			return fmt.Errorf("save order %s: insert seat=%d: %w", order.ID, seat.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save order %s: commit tx: %w", order.ID, err)
	}

	return nil
}

// Return up to limit orders, newest first.
func (s *SqliteOrderRepository) ListOrders(ctx context.Context, limit int) (_ []*domain.Order, err error) {
	defer obs.Time(ctx, "orders.sqlite.ListOrders")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite order repository: DB is nil")
	}
	if limit <= 0 {
		return []*domain.Order{}, nil
	}

	query := `
	SELECT
		o.order_id,
		o.hour,
		o.cuisine,
		o.party_size,
		o.created_at,
		s.seat,
		s.main_course,
		s.drink,
		s.repeated
	FROM (
		SELECT * FROM orders
		ORDER BY created_at DESC, order_id
		LIMIT ?
	) o
	LEFT JOIN order_seats s ON s.order_id = o.order_id
	ORDER BY o.created_at DESC, o.order_id, s.seat;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	var joined []orderRow
	for rows.Next() {
		var r orderRow
		var createdAt int64
		if err := rows.Scan(&r.orderID, &r.hour, &r.cuisine, &r.partySize, &createdAt, &r.seat, &r.mainCourse, &r.drink, &r.repeated); err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		r.createdAt = time.Unix(0, createdAt).UTC()
		joined = append(joined, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	orders, err := groupOrders(joined)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
