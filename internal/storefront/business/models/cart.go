package models

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type PromoCode struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// Session identifies the active customer and their pickup location. Every
// stock-dependent operation takes it explicitly instead of reading shared
// ambient state.
type Session struct {
	UserID     string `json:"userId"`
	LocationID string `json:"locationId"`
}
