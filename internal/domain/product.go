package domain

import (
	"strconv"
	"strings"
)

// Position of an item in a kitchen's lineup, selected by a numeric code.
type ProductChoice int

const (
	Primary ProductChoice = iota + 1
	Secondary
	Tertiary
)

// Map a numeric menu code to a choice.
// 1 and 2 select the first two items; every other code falls through
// to the third item of the lineup.
func ChoiceFromCode(code int) ProductChoice {
	switch code {
	case 1:
		return Primary
	case 2:
		return Secondary
	default:
		return Tertiary
	}
}

// Parse a menu code typed by a guest. Input that is not an integer
// takes the same catch-all path as an unknown code.
func ParseChoice(s string) ProductChoice {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Tertiary
	}
	return ChoiceFromCode(code)
}

// Code returns the numeric menu code shown to guests.
func (c ProductChoice) Code() int {
	return int(c)
}

// Burger is the American kitchen's product family.
type Burger int

const (
	Cheeseburger Burger = iota + 1
	DoubleBurger
	VeganBurger
)

func (b Burger) Name() string {
	switch b {
	case Cheeseburger:
		return "Cheeseburger"
	case DoubleBurger:
		return "DoubleBurger"
	case VeganBurger:
		return "VeganBurger"
	default:
		return "Burger(" + strconv.Itoa(int(b)) + ")"
	}
}

func (b Burger) String() string { return b.Name() }

// Pasta is the Italian kitchen's product family.
type Pasta int

const (
	Carbonara Pasta = iota + 1
	Fettuccine
	Lasagna
)

func (p Pasta) Name() string {
	switch p {
	case Carbonara:
		return "Carbonara"
	case Fettuccine:
		return "Fettuccine"
	case Lasagna:
		return "Lasagna"
	default:
		return "Pasta(" + strconv.Itoa(int(p)) + ")"
	}
}

func (p Pasta) String() string { return p.Name() }
