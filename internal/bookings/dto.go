package bookings

import "shareit-backend/internal/platform/jsontime"

type CreateBookingRequest struct {
	ItemID int64              `json:"itemId"`
	Start  *jsontime.DateTime `json:"start"`
	End    *jsontime.DateTime `json:"end"`
}

type BookingResponse struct {
	ID     int64             `json:"id"`
	Start  jsontime.DateTime `json:"start"`
	End    jsontime.DateTime `json:"end"`
	Status Status            `json:"status"`
	Booker BookerRef         `json:"booker"`
	Item   ItemRef           `json:"item"`
}

type BookerRef struct {
	ID int64 `json:"id"`
}

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
