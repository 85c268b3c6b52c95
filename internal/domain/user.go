package domain

// User represents an account record. The password is stored as given and
// never interpreted by the service.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// NewUser carries the fields supplied when creating a user.
type NewUser struct {
	Username string
	Password string
}
