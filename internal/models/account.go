package models

// Account is a registered user. Username is stored lowercased; the password
// is kept as entered.
type Account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
