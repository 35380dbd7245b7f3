package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// ListResponse é o envelope das listagens paginadas da Graph API
type ListResponse[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// CreateResponse é a resposta de todo POST de criação
type CreateResponse struct {
	ID string `json:"id"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
