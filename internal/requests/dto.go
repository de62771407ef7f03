package requests

import "shareit-backend/internal/platform/jsontime"

type CreateRequestRequest struct {
	Description string `json:"description"`
}

type RequestResponse struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	RequestorID int64             `json:"requestorId"`
	Created     jsontime.DateTime `json:"created"`
	Items       []ItemResponse    `json:"items"`
}

type ItemResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}
