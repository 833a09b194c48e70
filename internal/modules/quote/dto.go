package quote

type QuoteRequest struct {
	SiteID       int64  `json:"site_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

type QuoteResponse struct {
	Nights   int    `json:"nights"`
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
	Currency string `json:"currency"`
}
