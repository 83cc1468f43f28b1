package responses

type SaveUser struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type AdminCheck struct {
	IsAdmin bool `json:"isAdmin"`
}
