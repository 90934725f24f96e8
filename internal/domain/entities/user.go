package entities

// User is the authentication placeholder entity. No login flow is wired up
// yet; the storage contract only supports create and lookup.
//
// Username uniqueness is NOT enforced at the storage interface. The
// underlying schema declares the column unique, but neither implementation
// rejects duplicates across calls; lookups by username return an
// arbitrary-but-stable match.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInput is the submittable shape for user creation.
type UserInput struct {
	Username string
	Password string
}
