package domain

// User models an account in the user store. Accounts are created and mutated
// by an external management tool; this service only reads them.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Active       bool   `json:"active"`
	Locked       bool   `json:"locked"`
	RoleName     string `json:"role_name"`
}
