package user

// User is an account row. PasswordHash holds a bcrypt hash, never the
// plaintext password.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
