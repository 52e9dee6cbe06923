package domain

// Role — роль актора, определённая внешним слоем аутентификации.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Actor — пользователь, от имени которого выполняется операция.
type Actor struct {
	UserID string
	Role   Role
}

// IsAdmin сообщает, есть ли у актора административные права.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
