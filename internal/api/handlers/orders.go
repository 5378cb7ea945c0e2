package handlers

import (
	"net/http"
	"restaurant-order/internal/api/dto"
	"restaurant-order/internal/ports"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const maxHistoryLimit = 100

// OrderHandler exposes read-only order history endpoints.
type OrderHandler struct {
	Repo         ports.OrderRepository
	DefaultLimit int
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	limit := h.DefaultLimit
	if limit <= 0 || limit > maxHistoryLimit {
		limit = 20
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxHistoryLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = v
	}

	orders, err := h.Repo.ListOrders(r.Context(), limit)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list orders failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		seats := make([]dto.SeatResponse, 0, len(o.Seats))
		for _, s := range o.Seats {
			sr := dto.SeatResponse{Seat: s.Number, Repeated: s.Repeated}
			if s.Served {
				main := s.Meal.MainCourse()
				sr.MainCourse = &main
				if d, ok := s.Meal.Drink(); ok {
					sr.Drink = &d
				}
			}
			seats = append(seats, sr)
		}

		res.Orders = append(res.Orders, dto.OrderResponse{
			OrderID:   o.ID,
			Hour:      o.Hour,
			Kitchen:   o.Cuisine.String(),
			PartySize: o.PartySize,
			CreatedAt: o.CreatedAt,
			Seats:     seats,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
