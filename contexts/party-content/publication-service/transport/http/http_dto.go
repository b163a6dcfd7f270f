package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatePublicationRequest is the payload for creating a news article or statement.
type CreatePublicationRequest struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url,omitempty"`
}

type UpdatePublicationRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url,omitempty"`
}

type PublicationPayload struct {
	PublicationID string `json:"publication_id"`
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	ImageURL      string `json:"image_url,omitempty"`
	AuthorID      string `json:"author_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type PublicationResponse struct {
	Status string             `json:"status"`
	Data   PublicationPayload `json:"data"`
}

type ListPublicationsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []PublicationPayload `json:"items"`
	} `json:"data"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
