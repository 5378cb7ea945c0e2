package dto

import "time"

type SeatResponse struct {
	Seat       int     `json:"seat"`
	MainCourse *string `json:"main_course"`
	Drink      *string `json:"drink"`
	Repeated   bool    `json:"repeated"`
}

type OrderResponse struct {
	OrderID   string         `json:"order_id"`
	Hour      int            `json:"hour"`
	Kitchen   string         `json:"kitchen"`
	PartySize int            `json:"party_size"`
	CreatedAt time.Time      `json:"created_at"`
	Seats     []SeatResponse `json:"seats"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
