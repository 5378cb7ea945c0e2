package repositories

import (
	"database/sql"
	"fmt"
	"restaurant-order/internal/domain"
	"time"
)

// orderRow is one line of the orders LEFT JOIN order_seats result.
type orderRow struct {
	orderID    string
	hour       int
	cuisine    string
	partySize  int
	createdAt  time.Time
	seat       sql.NullInt64
	mainCourse sql.NullString
	drink      sql.NullString
	repeated   sql.NullBool
}

func seatColumns(s domain.Seat) (mainCourse, drink sql.NullString) {
	if !s.Served {
		return
	}
	mainCourse = sql.NullString{String: s.Meal.MainCourse(), Valid: true}
	if d, ok := s.Meal.Drink(); ok {
		drink = sql.NullString{String: d, Valid: true}
	}
	return
}

func seatFromColumns(number int, mainCourse, drink sql.NullString, repeated bool) domain.Seat {
	seat := domain.Seat{Number: number, Repeated: repeated}
	if !mainCourse.Valid {
		return seat
	}
	seat.Served = true
	if drink.Valid {
		seat.Meal = domain.Combo(mainCourse.String, drink.String)
	} else {
		seat.Meal = domain.ALaCarte(mainCourse.String)
	}
	return seat
}

// groupOrders folds joined rows, already sorted by order then seat, into orders.
func groupOrders(rows []orderRow) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0)
	var cur *domain.Order
	for _, r := range rows {
		if cur == nil || cur.ID != r.orderID {
			cuisine, err := domain.ParseCuisine(r.cuisine)
			if err != nil {
				return nil, fmt.Errorf("order %s: %w", r.orderID, err)
			}
			cur = domain.NewOrder(r.orderID, r.hour, cuisine, r.partySize, r.createdAt)
			out = append(out, cur)
		}
		if r.seat.Valid {
			cur.Seats = append(cur.Seats, seatFromColumns(int(r.seat.Int64), r.mainCourse, r.drink, r.repeated.Valid && r.repeated.Bool))
		}
	}
	return out, nil
}
