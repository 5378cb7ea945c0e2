package services

import "restaurant-order/internal/domain"

// Course choices offered before the product lineup.
const (
	CourseALaCarte = "1"
	CourseCombo    = "2"
)

type MenuItem struct {
	Code int
	Name string
}

// Menu describes what a kitchen serves, in the order guests see it.
type Menu struct {
	Cuisine      domain.Cuisine
	Courses      []MenuItem
	MealDrink    string
	AlcoholDrink string
}

func MenuFor(k domain.Kitchen) Menu {
	lineup := k.Lineup()
	courses := make([]MenuItem, 0, len(lineup))
	for i, name := range lineup {
		courses = append(courses, MenuItem{Code: i + 1, Name: name})
	}

	return Menu{
		Cuisine:      k.Cuisine(),
		Courses:      courses,
		MealDrink:    k.MealDrink(),
		AlcoholDrink: k.AlcoholDrink(),
	}
}

// Family is the name of the kitchen's product family, as shown on the menu.
func (m Menu) Family() string {
	if m.Cuisine == domain.Italian {
		return "Pasta"
	}
	return "Burger"
}

// Drink picks the combo drink for a guest.
func (m Menu) Drink(alcoholic bool) string {
	if alcoholic {
		return m.AlcoholDrink
	}
	return m.MealDrink
}
