package domain

// User is present in the schema but no flow authenticates with it.
// Password holds a bcrypt hash.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
