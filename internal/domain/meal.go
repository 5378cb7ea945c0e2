package domain

// Meal is what a single guest is served: a main course and, for a
// combo, a drink. Meals are values and never change once built.
type Meal struct {
	mainCourse string
	drink      string
	hasDrink   bool
}

// Main course only.
func ALaCarte(mainCourse string) Meal {
	return Meal{mainCourse: mainCourse}
}

// Main course with a drink. An empty drink means there is none.
func Combo(mainCourse, drink string) Meal {
	return Meal{mainCourse: mainCourse, drink: drink, hasDrink: drink != ""}
}

func (m Meal) MainCourse() string {
	return m.mainCourse
}

// Drink returns the drink and whether the meal has one.
func (m Meal) Drink() (string, bool) {
	return m.drink, m.hasDrink
}

func (m Meal) IsCombo() bool {
	return m.hasDrink
}

func (m Meal) String() string {
	if !m.hasDrink {
		return m.mainCourse
	}
	return m.mainCourse + " and " + m.drink
}

// MealBuilder assembles a Meal step by step. Every step returns a new
// builder, so a partially configured builder can be reused.
type MealBuilder struct {
	meal Meal
}

func NewMealBuilder() MealBuilder {
	return MealBuilder{}
}

func (b MealBuilder) AddMainCourse(name string) MealBuilder {
	b.meal.mainCourse = name
	return b
}

// AddDrink with an empty name clears the drink.
func (b MealBuilder) AddDrink(name string) MealBuilder {
	b.meal.drink = name
	b.meal.hasDrink = name != ""
	return b
}

func (b MealBuilder) Build() Meal {
	return b.meal
}
