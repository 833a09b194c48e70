package booking

type CreateBookingRequest struct {
	CampID       int64  `json:"camp_id" binding:"required"`
	SiteID       int64  `json:"site_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	HeadCount    int    `json:"head_count"`
	Provider     string `json:"provider"`
	ProviderTxID string `json:"provider_tx_id"`
}

type CreateBookingResponse struct {
	BookingID   int64  `json:"booking_id"`
	BookingCode string `json:"booking_code"`
	Status      string `json:"status"`
	Total       string `json:"total"`
	Currency    string `json:"currency"`
}

type CancelBookingRequest struct {
	Reason     string `json:"reason"`
	CancelDate string `json:"cancel_date"`
}

type RefundResponse struct {
	RefundID        int64  `json:"refund_id"`
	Status          string `json:"status"`
	RequestedAmount string `json:"requested_amount"`
	ApprovedAmount  string `json:"approved_amount"`
	Currency        string `json:"currency"`
}
