package dto

type RegisterRequestDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SessionDTO describes the account a token was issued for.
type SessionDTO struct {
	UserID int    `json:"user_id"`
	Login  string `json:"login"`
	Tokens int64  `json:"tokens"`
}

type RegisterResponseDTO struct {
	Message string     `json:"message"`
	Session SessionDTO `json:"session"`
}

type LoginRequestDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Message string     `json:"message"`
	Session SessionDTO `json:"session"`
}
