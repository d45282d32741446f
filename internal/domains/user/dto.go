package user

// LoginRequest is the /auth/login payload. No field-level validation: an
// empty or missing username simply fails the lookup, which keeps the error
// strings limited to the two the clients know.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
