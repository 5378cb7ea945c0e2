package domain

import (
	"fmt"
	"time"
)

// Seat is one guest's place in an order.
// A seat is Served when the guest ended up with a meal; Repeated seats
// copied the previous guest's meal instead of going through the menu.
type Seat struct {
	Number   int
	Meal     Meal
	Served   bool
	Repeated bool
}

// Order is the result of one ordering session at a table.
// Every seat is served by the same kitchen, fixed when the hour was read.
type Order struct {
	ID        string
	Hour      int
	Cuisine   Cuisine
	PartySize int
	Seats     []Seat
	CreatedAt time.Time
}

// NewOrder keeps createdAt to the millisecond, the finest resolution
// order history is sorted by.
func NewOrder(id string, hour int, cuisine Cuisine, partySize int, createdAt time.Time) *Order {
	return &Order{
		ID:        id,
		Hour:      hour,
		Cuisine:   cuisine,
		PartySize: partySize,
		Seats:     make([]Seat, 0, max(partySize, 0)),
		CreatedAt: createdAt.Truncate(time.Millisecond),
	}
}

func (o *Order) nextSeat() (int, error) {
	if len(o.Seats) >= o.PartySize {
		return 0, fmt.Errorf("order %s: all %d seats are taken", o.ID, o.PartySize)
	}
	return len(o.Seats) + 1, nil
}

// Serve seats the next guest with the given meal.
func (o *Order) Serve(m Meal) error {
	n, err := o.nextSeat()
	if err != nil {
		return err
	}
	o.Seats = append(o.Seats, Seat{Number: n, Meal: m, Served: true})
	return nil
}

// Skip seats the next guest without a meal.
func (o *Order) Skip() error {
	n, err := o.nextSeat()
	if err != nil {
		return err
	}
	o.Seats = append(o.Seats, Seat{Number: n})
	return nil
}

// Previous returns the meal of the last seated guest, if that guest was served.
func (o *Order) Previous() (Meal, bool) {
	if len(o.Seats) == 0 {
		return Meal{}, false
	}
	last := o.Seats[len(o.Seats)-1]
	return last.Meal, last.Served
}

// Seat the next guest with a copy of the previous guest's meal.
// It fails when there is no served previous guest.
func (o *Order) RepeatPrevious() (Meal, error) {
	prev, ok := o.Previous()
	if !ok {
		return Meal{}, fmt.Errorf("order %s: no previous meal to repeat", o.ID)
	}
	n, err := o.nextSeat()
	if err != nil {
		return Meal{}, err
	}
	o.Seats = append(o.Seats, Seat{Number: n, Meal: prev, Served: true, Repeated: true})
	return prev, nil
}

// Meals returns the meals of all served seats, in seat order.
func (o *Order) Meals() []Meal {
	meals := make([]Meal, 0, len(o.Seats))
	for _, s := range o.Seats {
		if s.Served {
			meals = append(meals, s.Meal)
		}
	}
	return meals
}

func (o *Order) Complete() bool {
	return o.PartySize > 0 && len(o.Seats) == o.PartySize
}
