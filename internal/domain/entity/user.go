package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// User representa una cuenta del sistema (admin de RRHH o empleado).
// EmployeeID es opcional: los admins no tienen código de empleado.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         string  // ADMIN, EMPLOYEE
	EmployeeID   *string // único cuando está presente
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si la cuenta tiene rol de administrador.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
