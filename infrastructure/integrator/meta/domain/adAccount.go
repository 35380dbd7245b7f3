package metadomain

type AdAccount struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id,omitempty"`
	Name        string `json:"name"`
	AmountSpent string `json:"amount_spent,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

type PictureData struct {
	URL string `json:"url"`
}

type Picture struct {
	Data PictureData `json:"data"`
}

type Page struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Picture Picture `json:"picture"`
}
