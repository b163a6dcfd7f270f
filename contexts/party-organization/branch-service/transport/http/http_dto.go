package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateBranchRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type UpdateBranchRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type BranchPayload struct {
	BranchID  string `json:"branch_id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type BranchResponse struct {
	Status string        `json:"status"`
	Data   BranchPayload `json:"data"`
}

type ListBranchesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []BranchPayload `json:"items"`
	} `json:"data"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
