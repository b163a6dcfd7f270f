package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expires_at"`
	} `json:"data"`
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type AdminEntry struct {
	IdentityID string `json:"identity_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	CreatedAt  string `json:"created_at"`
}

type CreateAdminResponse struct {
	Status string     `json:"status"`
	Data   AdminEntry `json:"data"`
}

type ListAdminsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []AdminEntry `json:"items"`
	} `json:"data"`
}

type ChangeCredentialRequest struct {
	Password string `json:"password"`
}

type RenameAdminRequest struct {
	Username string `json:"username"`
}

type MeResponse struct {
	Status string `json:"status"`
	Data   struct {
		IdentityID string `json:"identity_id"`
		Role       string `json:"role"`
	} `json:"data"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
