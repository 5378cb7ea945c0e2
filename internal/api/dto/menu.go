package dto

type MenuItemResponse struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type MenuResponse struct {
	Hour         int                `json:"hour"`
	Open         bool               `json:"open"`
	Kitchen      string             `json:"kitchen,omitempty"`
	Family       string             `json:"family,omitempty"`
	Courses      []MenuItemResponse `json:"courses,omitempty"`
	MealDrink    string             `json:"meal_drink,omitempty"`
	AlcoholDrink string             `json:"alcohol_drink,omitempty"`
}
