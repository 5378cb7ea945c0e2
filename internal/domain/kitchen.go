package domain

import (
	"fmt"
	"strings"
)

// Cuisine identifies which kitchen is serving.
type Cuisine int

const (
	American Cuisine = iota + 1
	Italian
)

func (c Cuisine) String() string {
	switch c {
	case American:
		return "american"
	case Italian:
		return "italian"
	default:
		return "unknown"
	}
}

func ParseCuisine(s string) (Cuisine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "american":
		return American, nil
	case "italian":
		return Italian, nil
	default:
		return 0, fmt.Errorf("parse cuisine: unknown cuisine %q", s)
	}
}

// Kitchen is the set of behavior shared by every kitchen.
//
// Each concrete kitchen adds the factory for the one product family it
// cooks: AmericanKitchen.CreateBurger and ItalianKitchen.CreatePasta.
// Callers pick the family with a type switch, so asking a kitchen for a
// product it does not make cannot be expressed.
type Kitchen interface {
	Cuisine() Cuisine
	// Drink served with a combo meal to a guest who does not drink alcohol.
	MealDrink() string
	// Drink served with a combo meal to a guest who does.
	AlcoholDrink() string
	// Item names in menu order: Primary, Secondary, Tertiary.
	Lineup() []string

	kitchen()
}

func NewKitchen(c Cuisine) (Kitchen, error) {
	switch c {
	case American:
		return AmericanKitchen{}, nil
	case Italian:
		return ItalianKitchen{}, nil
	default:
		return nil, fmt.Errorf("new kitchen: unsupported cuisine %d", int(c))
	}
}

var choices = []ProductChoice{Primary, Secondary, Tertiary}

type AmericanKitchen struct{}

func (AmericanKitchen) kitchen() {}

func (AmericanKitchen) Cuisine() Cuisine { return American }

func (AmericanKitchen) CreateBurger(choice ProductChoice) Burger {
	switch choice {
	case Primary:
		return Cheeseburger
	case Secondary:
		return DoubleBurger
	default:
		return VeganBurger
	}
}

func (AmericanKitchen) MealDrink() string { return "Cola" }

func (AmericanKitchen) AlcoholDrink() string { return "Beer" }

func (k AmericanKitchen) Lineup() []string {
	names := make([]string, 0, len(choices))
	for _, c := range choices {
		names = append(names, k.CreateBurger(c).Name())
	}
	return names
}

type ItalianKitchen struct{}

func (ItalianKitchen) kitchen() {}

func (ItalianKitchen) Cuisine() Cuisine { return Italian }

func (ItalianKitchen) CreatePasta(choice ProductChoice) Pasta {
	switch choice {
	case Primary:
		return Carbonara
	case Secondary:
		return Fettuccine
	default:
		return Lasagna
	}
}

func (ItalianKitchen) MealDrink() string { return "Juice" }

func (ItalianKitchen) AlcoholDrink() string { return "Wine" }

func (k ItalianKitchen) Lineup() []string {
	names := make([]string, 0, len(choices))
	for _, c := range choices {
		names = append(names, k.CreatePasta(c).Name())
	}
	return names
}
