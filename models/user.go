package models

// Account roles. The customer-facing role is stored as "user" so persisted
// data stays readable by older clients.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the credential-free view of an account, the only shape the session
// ever exposes to readers.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Account is the registration record persisted in the users blob: a User plus
// the stored credential hash. Only the account store reads or writes it.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"password"`
}

// User strips the credential hash from the account.
func (a Account) User() User {
	return User{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}

// ValidRole reports whether role is one of the account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
