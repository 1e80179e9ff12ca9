package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con el bearer token opaco y el usuario serializado
// (perfil anidado, null si no existe).
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin password). Profile es null cuando
// el usuario no tiene perfil creado.
type UserResponse struct {
	ID         string           `json:"id"`
	Username   string           `json:"username"`
	Email      string           `json:"email"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Role       string           `json:"role"`
	EmployeeID *string          `json:"employee_id"`
	Profile    *ProfileResponse `json:"profile"`
}

// CreateEmployeeRequest entrada para crear un empleado con su perfil inicial
// (solo admin). Los campos de perfil opcionales reciben defaults.
type CreateEmployeeRequest struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	EmployeeID  string  `json:"employee_id"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	PhoneNumber string  `json:"phone_number"`
	Location    string  `json:"location"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
}
