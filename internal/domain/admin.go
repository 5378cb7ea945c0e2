package domain

// Opening-hours policy. The restaurant is open in [OpeningHour, ClosingHour)
// and switches from the American to the Italian kitchen at ItalianFromHour.
const (
	OpeningHour     = 9
	ClosingHour     = 23
	ItalianFromHour = 14
)

// Admin holds the restaurant's opening-hours policy and the alcohol
// preference of the guest currently ordering.
// One Admin is created per session by the composition root and passed to
// whoever needs it.
type Admin struct {
	isAlcoholic bool
}

func NewAdmin() *Admin {
	return &Admin{}
}

// ValidHour reports whether hour is a wall-clock hour in [0, 23].
func ValidHour(hour int) bool {
	return hour >= 0 && hour <= 23
}

// Report whether the restaurant serves guests at the given hour.
func (a *Admin) IsOpen(hour int) bool {
	return hour >= OpeningHour && hour < ClosingHour
}

// Return the cuisine served at the given hour.
// The result is only meaningful for hours where IsOpen is true.
func (a *Admin) KitchenVariant(hour int) Cuisine {
	if hour < ItalianFromHour {
		return American
	}
	return Italian
}

// Return the kitchen serving at the given hour.
func (a *Admin) Kitchen(hour int) Kitchen {
	if a.KitchenVariant(hour) == American {
		return AmericanKitchen{}
	}
	return ItalianKitchen{}
}

func (a *Admin) IsAlcoholic() bool {
	return a.isAlcoholic
}

func (a *Admin) SetAlcoholic(alcoholic bool) {
	a.isAlcoholic = alcoholic
}
