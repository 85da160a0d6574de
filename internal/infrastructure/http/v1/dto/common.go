// Package dto defines request payloads for the HTTP API.
package dto

// StatusRequest carries a bare status overwrite.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderLineRequest is one (item, qty, price) line of a commercial document.
type OrderLineRequest struct {
	ItemID string  `json:"itemId" binding:"required"`
	Qty    float64 `json:"qty"`
	Price  float64 `json:"price"`
}
