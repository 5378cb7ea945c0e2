package handlers

import (
	"net/http"
	"restaurant-order/internal/api/dto"
	"restaurant-order/internal/domain"
	"restaurant-order/internal/services"
	"strconv"
	"strings"
	"time"
)

// MenuHandler shows which kitchen serves at a given hour and what it offers.
type MenuHandler struct {
	Admin *domain.Admin
	Now   func() time.Time
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	hour := h.Now().Hour()
	if raw := strings.TrimSpace(r.URL.Query().Get("hour")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || !domain.ValidHour(v) {
			writeError(w, r, http.StatusBadRequest, "hour must be an integer between 0 and 23")
			return
		}
		hour = v
	}

	res := dto.MenuResponse{Hour: hour, Open: h.Admin.IsOpen(hour)}
	if !res.Open {
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	menu := services.MenuFor(h.Admin.Kitchen(hour))
	res.Kitchen = menu.Cuisine.String()
	res.Family = menu.Family()
	res.MealDrink = menu.MealDrink
	res.AlcoholDrink = menu.AlcoholDrink
	res.Courses = make([]dto.MenuItemResponse, 0, len(menu.Courses))
	for _, c := range menu.Courses {
		res.Courses = append(res.Courses, dto.MenuItemResponse{Code: c.Code, Name: c.Name})
	}

	writeJSON(w, r, http.StatusOK, res)
}
