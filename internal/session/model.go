package session

type RoleName string

const (
	RoleUser  RoleName = "USER"
	RoleAdmin RoleName = "ADMIN"
)

type Role struct {
	ID   uint     `json:"id"`
	Name RoleName `json:"name"`
}

// Session is the identity snapshot persisted after a successful login
// or renewal. Its presence means "was authenticated as of the last
// successful check", never a guarantee of current validity.
type Session struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}
