package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealBuilderCombo(t *testing.T) {
	m := NewMealBuilder().AddMainCourse("Cheeseburger").AddDrink("Beer").Build()

	assert.Equal(t, "Cheeseburger", m.MainCourse())
	drink, ok := m.Drink()
	assert.True(t, ok)
	assert.Equal(t, "Beer", drink)
	assert.True(t, m.IsCombo())
	assert.Equal(t, Combo("Cheeseburger", "Beer"), m)
	assert.Equal(t, "Cheeseburger and Beer", m.String())
}

func TestMealBuilderWithoutDrink(t *testing.T) {
	m := NewMealBuilder().AddMainCourse("Lasagna").Build()

	assert.Equal(t, "Lasagna", m.MainCourse())
	_, ok := m.Drink()
	assert.False(t, ok)
	assert.False(t, m.IsCombo())
	assert.Equal(t, ALaCarte("Lasagna"), m)
	assert.Equal(t, "Lasagna", m.String())
}

func TestMealBuilderReuse(t *testing.T) {
	base := NewMealBuilder().AddMainCourse("Carbonara")

	plain := base.Build()
	withWine := base.AddDrink("Wine").Build()
	withJuice := base.AddDrink("Juice").Build()

	assert.False(t, plain.IsCombo())
	assert.Equal(t, "Carbonara and Wine", withWine.String())
	assert.Equal(t, "Carbonara and Juice", withJuice.String())
}

func TestMealEmptyDrinkIsAbsent(t *testing.T) {
	m := NewMealBuilder().AddMainCourse("VeganBurger").AddDrink("").Build()

	_, ok := m.Drink()
	assert.False(t, ok)
	assert.False(t, m.IsCombo())
	assert.Equal(t, "VeganBurger", m.String())
	assert.Equal(t, ALaCarte("VeganBurger"), m)

	cleared := NewMealBuilder().AddMainCourse("Lasagna").AddDrink("Wine").AddDrink("").Build()
	assert.Equal(t, ALaCarte("Lasagna"), cleared)

	assert.False(t, Combo("Lasagna", "").IsCombo())
}
