package handlers

type LoginResponse struct {
	AuthURL string `json:"authUrl"`
}

type MeResponse struct {
	Authenticated bool   `json:"authenticated"`
	CustomerID    string `json:"customerId,omitempty"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type LogoutURLResponse struct {
	LogoutURL string `json:"logoutUrl"`
}

type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

type ConsultaRequest struct {
	ContactRequest
	PetName string `json:"petName"`
	Breed   string `json:"breed"`
	Age     string `json:"age"`
	Details string `json:"details"`
}

type CustomerQueryRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}
