package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSeats(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC)
	order := NewOrder("o-1", 20, Italian, 3, createdAt)

	require.NoError(t, order.Serve(Combo("Carbonara", "Juice")))

	meal, err := order.RepeatPrevious()
	require.NoError(t, err)
	assert.Equal(t, Combo("Carbonara", "Juice"), meal)

	require.NoError(t, order.Skip())
	assert.True(t, order.Complete())

	assert.Equal(t, []Seat{
		{Number: 1, Meal: Combo("Carbonara", "Juice"), Served: true},
		{Number: 2, Meal: Combo("Carbonara", "Juice"), Served: true, Repeated: true},
		{Number: 3},
	}, order.Seats)
	assert.Len(t, order.Meals(), 2)

	assert.Error(t, order.Serve(ALaCarte("Lasagna")), "party of three is already seated")
}

func TestOrderRepeatNeedsServedPrevious(t *testing.T) {
	order := NewOrder("o-2", 10, American, 3, time.Now())

	_, err := order.RepeatPrevious()
	assert.Error(t, err, "nobody seated yet")

	require.NoError(t, order.Skip())
	_, ok := order.Previous()
	assert.False(t, ok)

	_, err = order.RepeatPrevious()
	assert.Error(t, err, "previous guest was not served")
	assert.Len(t, order.Seats, 1)
}

func TestOrderIncomplete(t *testing.T) {
	order := NewOrder("o-3", 12, American, 2, time.Now())
	require.NoError(t, order.Serve(ALaCarte("Cheeseburger")))

	assert.False(t, order.Complete())
	assert.Equal(t, []Meal{ALaCarte("Cheeseburger")}, order.Meals())
}

func TestOrderCreatedAtMillisecondPrecision(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 20, 0, 0, 123456789, time.UTC)
	order := NewOrder("o-4", 20, Italian, 1, createdAt)

	assert.Equal(t, time.Date(2026, 1, 1, 20, 0, 0, 123000000, time.UTC), order.CreatedAt)
}
