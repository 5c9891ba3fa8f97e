package v1

type Credentials struct {
	Username string `json:"username" example:"amministratore"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type Session struct {
	Username string `json:"username" example:"amministratore"`
	Token    string `json:"token"` // Bearer token for the Authorization header
}

type LoginResponse struct {
	Error *string  `json:"error" example:"the username or password is incorrect"` // The error, if any occurred
	Data  *Session `json:"data"`                                                  // The session
}
