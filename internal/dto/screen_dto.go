package dto

// Notice is a user-facing message raised by an action (the alert of the
// original screens). ID changes on every notice so the front-end can tell two
// identical messages apart.
type Notice struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Screen is the rendered state of a list view-model.
type Screen[T any] struct {
	Items        []T     `json:"items"`
	Total        int     `json:"total"`
	SearchText   string  `json:"search_text"`
	IsLoading    bool    `json:"is_loading"`
	ErrorMessage *string `json:"error_message"`
	Notice       *Notice `json:"notice,omitempty"`
}

// SettlementResponse reports the outcome of paying one seller.
type SettlementResponse struct {
	SellerID     string  `json:"seller_id"`
	SuccessCount int     `json:"success_count"`
	FailureCount int     `json:"failure_count"`
	Notice       *Notice `json:"notice"`
}
